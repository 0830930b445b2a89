// Package taxonomy holds the static basketball vocabulary: quick actions,
// the advisory transition map, decision-quality tables and defensive
// counters. All tables are checked by Validate when loaded.
package taxonomy

import (
	"github.com/courtvision/court-vision/internal/domain/tag"
)

type Label string

const (
	LabelExcellent    Label = "excellent"
	LabelGood         Label = "good"
	LabelQuestionable Label = "questionable"
	LabelRisky        Label = "risky"
)

// Score is the numeric value of a label.
func (l Label) Score() (float64, bool) {
	switch l {
	case LabelExcellent:
		return 4, true
	case LabelGood:
		return 3, true
	case LabelQuestionable:
		return 1, true
	case LabelRisky:
		return 0, true
	default:
		return 0, false
	}
}

const (
	Screen           = "Screen"
	PickAndRoll      = "Pick and Roll"
	PickAndPop       = "Pick and Pop"
	Isolation        = "Isolation"
	PostUp           = "Post Up"
	Drive            = "Drive"
	Handoff          = "Handoff"
	OffScreen        = "Off Screen"
	Cut              = "Cut"
	SpotUp           = "Spot Up"
	Pass             = "Pass"
	Layup            = "Layup"
	Dunk             = "Dunk"
	Floater          = "Floater"
	JumpShot         = "Jump Shot"
	ThreePointer     = "Three Pointer"
	FreeThrow        = "Free Throw"
	FastBreak        = "Fast Break"
	Transition       = "Transition"
	Assist           = "Assist"
	Turnover         = "Turnover"
	FoulDrawn        = "Foul Drawn"
	OffensiveRebound = "Offensive Rebound"
	DefensiveRebound = "Defensive Rebound"
	Steal            = "Steal"
	Block            = "Block"
	ChargeTaken      = "Charge Taken"
	DoubleTeam       = "Double Team"
	Switch           = "Switch"
	Timeout          = "Timeout"
)

// QuickAction is a one-click tag in the tagging UI.
type QuickAction struct {
	Name        string
	Category    tag.Category
	Subcategory string
	Shortcut    string
	Description string
}

// Tables is the full static vocabulary.
type Tables struct {
	QuickActions []QuickAction
	// StartActions are suggested when no previous action is known.
	StartActions []string
	// Transitions lists allowed next actions keyed by previous action.
	Transitions map[string][]string
	// SingleActions grades an action on its own.
	SingleActions map[string]Label
	// Sequences grades a previous -> next step and takes precedence over SingleActions.
	Sequences map[Step]Label
	// Counters lists defensive recommendations against an offensive action.
	Counters map[string][]string
}

// Step is a two-action sequence.
type Step struct {
	From string
	To   string
}

// Default returns the built-in tables. Callers get a fresh copy.
func Default() Tables {
	return Tables{
		QuickActions: []QuickAction{
			{Name: Screen, Category: tag.CategoryOffense, Subcategory: "action", Shortcut: "S", Description: "On-ball or off-ball screen set"},
			{Name: PickAndRoll, Category: tag.CategoryOffense, Subcategory: "half-court", Shortcut: "P", Description: "Ball handler uses a screen, screener rolls"},
			{Name: PickAndPop, Category: tag.CategoryOffense, Subcategory: "half-court", Shortcut: "O", Description: "Ball handler uses a screen, screener pops out"},
			{Name: Isolation, Category: tag.CategoryOffense, Subcategory: "half-court", Shortcut: "I", Description: "One-on-one possession"},
			{Name: PostUp, Category: tag.CategoryOffense, Subcategory: "half-court", Shortcut: "U", Description: "Back-to-basket touch on the block"},
			{Name: Drive, Category: tag.CategoryOffense, Subcategory: "action", Shortcut: "D", Description: "Attack off the dribble"},
			{Name: Handoff, Category: tag.CategoryOffense, Subcategory: "action", Shortcut: "H", Description: "Dribble handoff"},
			{Name: OffScreen, Category: tag.CategoryOffense, Subcategory: "action", Shortcut: "N", Description: "Shooter curls or fades off a screen"},
			{Name: Cut, Category: tag.CategoryOffense, Subcategory: "action", Shortcut: "C", Description: "Off-ball cut to the rim"},
			{Name: SpotUp, Category: tag.CategoryOffense, Subcategory: "action", Shortcut: "Y", Description: "Catch on the perimeter"},
			{Name: Pass, Category: tag.CategoryOffense, Subcategory: "action", Shortcut: "A", Description: "Pass to a teammate"},
			{Name: Layup, Category: tag.CategoryShot, Subcategory: "rim", Shortcut: "L", Description: "Layup attempt"},
			{Name: Dunk, Category: tag.CategoryShot, Subcategory: "rim", Shortcut: "K", Description: "Dunk attempt"},
			{Name: Floater, Category: tag.CategoryShot, Subcategory: "paint", Shortcut: "F", Description: "Floater or runner"},
			{Name: JumpShot, Category: tag.CategoryShot, Subcategory: "midrange", Shortcut: "J", Description: "Two-point jump shot"},
			{Name: ThreePointer, Category: tag.CategoryShot, Subcategory: "perimeter", Shortcut: "3", Description: "Three-point attempt"},
			{Name: FreeThrow, Category: tag.CategoryShot, Subcategory: "line", Shortcut: "T", Description: "Free throw attempt"},
			{Name: FastBreak, Category: tag.CategoryTransition, Subcategory: "push", Shortcut: "B", Description: "Numbers advantage in transition"},
			{Name: Transition, Category: tag.CategoryTransition, Subcategory: "push", Shortcut: "R", Description: "Early offense before the defense sets"},
			{Name: Assist, Category: tag.CategoryOutcome, Subcategory: "positive", Shortcut: "E", Description: "Pass leading to a made basket"},
			{Name: Turnover, Category: tag.CategoryOutcome, Subcategory: "negative", Shortcut: "X", Description: "Possession lost"},
			{Name: FoulDrawn, Category: tag.CategoryOutcome, Subcategory: "positive", Shortcut: "G", Description: "Defensive foul drawn"},
			{Name: OffensiveRebound, Category: tag.CategoryOutcome, Subcategory: "positive", Shortcut: "Q", Description: "Offensive rebound"},
			{Name: DefensiveRebound, Category: tag.CategoryDefense, Subcategory: "board", Shortcut: "W", Description: "Defensive rebound"},
			{Name: Steal, Category: tag.CategoryDefense, Subcategory: "disruption", Shortcut: "Z", Description: "Ball stolen"},
			{Name: Block, Category: tag.CategoryDefense, Subcategory: "disruption", Shortcut: "V", Description: "Shot blocked"},
			{Name: ChargeTaken, Category: tag.CategoryDefense, Subcategory: "disruption", Shortcut: "M", Description: "Offensive foul drawn by the defender"},
			{Name: DoubleTeam, Category: tag.CategoryDefense, Subcategory: "scheme", Shortcut: "2", Description: "Two defenders on the ball"},
			{Name: Switch, Category: tag.CategoryDefense, Subcategory: "scheme", Shortcut: "1", Description: "Defenders exchange assignments"},
			{Name: Timeout, Category: tag.CategorySpecial, Subcategory: "stoppage", Shortcut: "0", Description: "Timeout called"},
		},
		StartActions: []string{PickAndRoll, Isolation, PostUp, Handoff, FastBreak, SpotUp},
		Transitions: map[string][]string{
			Screen:           {PickAndRoll, PickAndPop, OffScreen, Handoff},
			PickAndRoll:      {Drive, Pass, Floater, JumpShot, Layup, Dunk, Turnover},
			PickAndPop:       {ThreePointer, JumpShot, Pass, Drive},
			Isolation:        {Drive, JumpShot, ThreePointer, Pass, FoulDrawn, Turnover},
			PostUp:           {Layup, JumpShot, Pass, FoulDrawn, Turnover},
			Drive:            {Layup, Dunk, Floater, Pass, FoulDrawn, Turnover},
			Handoff:          {Drive, ThreePointer, JumpShot, Pass},
			OffScreen:        {ThreePointer, JumpShot, Drive, Pass},
			Cut:              {Layup, Dunk, FoulDrawn},
			SpotUp:           {ThreePointer, JumpShot, Drive},
			Pass:             {SpotUp, Cut, ThreePointer, JumpShot, Layup, Assist},
			FastBreak:        {Layup, Dunk, Pass, ThreePointer},
			Transition:       {ThreePointer, Drive, Pass, Layup},
			Layup:            {Assist, OffensiveRebound, DefensiveRebound, FoulDrawn},
			Dunk:             {Assist, FoulDrawn},
			Floater:          {OffensiveRebound, DefensiveRebound, Assist},
			JumpShot:         {OffensiveRebound, DefensiveRebound, Assist},
			ThreePointer:     {OffensiveRebound, DefensiveRebound, Assist},
			FoulDrawn:        {FreeThrow},
			OffensiveRebound: {Layup, Dunk, Pass},
			DefensiveRebound: {FastBreak, Transition, Pass},
			Steal:            {FastBreak, Transition},
			Block:            {FastBreak, DefensiveRebound},
			Turnover:         {FastBreak, Timeout},
			DoubleTeam:       {Pass, Turnover, Steal},
			Switch:           {Isolation, PostUp},
		},
		SingleActions: map[string]Label{
			Layup:            LabelExcellent,
			Dunk:             LabelExcellent,
			Cut:              LabelExcellent,
			Assist:           LabelExcellent,
			FastBreak:        LabelExcellent,
			Steal:            LabelExcellent,
			FreeThrow:        LabelGood,
			ThreePointer:     LabelGood,
			Floater:          LabelGood,
			FoulDrawn:        LabelGood,
			Pass:             LabelGood,
			Drive:            LabelGood,
			PickAndRoll:      LabelGood,
			PostUp:           LabelGood,
			SpotUp:           LabelGood,
			OffensiveRebound: LabelGood,
			Block:            LabelGood,
			ChargeTaken:      LabelGood,
			JumpShot:         LabelQuestionable,
			Isolation:        LabelQuestionable,
			Turnover:         LabelRisky,
		},
		Sequences: map[Step]Label{
			{From: PickAndRoll, To: Layup}:       LabelExcellent,
			{From: PickAndRoll, To: Dunk}:        LabelExcellent,
			{From: PickAndRoll, To: JumpShot}:    LabelQuestionable,
			{From: PickAndPop, To: ThreePointer}: LabelGood,
			{From: Isolation, To: Drive}:         LabelGood,
			{From: Isolation, To: JumpShot}:      LabelRisky,
			{From: Isolation, To: Turnover}:      LabelRisky,
			{From: Drive, To: Pass}:              LabelExcellent,
			{From: Drive, To: Floater}:           LabelGood,
			{From: Drive, To: Turnover}:          LabelRisky,
			{From: Pass, To: ThreePointer}:       LabelExcellent,
			{From: Pass, To: JumpShot}:           LabelGood,
			{From: Cut, To: Layup}:               LabelExcellent,
			{From: PostUp, To: Pass}:             LabelGood,
			{From: PostUp, To: JumpShot}:         LabelQuestionable,
			{From: FastBreak, To: Dunk}:          LabelExcellent,
			{From: FastBreak, To: ThreePointer}:  LabelQuestionable,
			{From: Handoff, To: ThreePointer}:    LabelGood,
			{From: SpotUp, To: Drive}:            LabelGood,
			{From: DoubleTeam, To: Pass}:         LabelExcellent,
			{From: DoubleTeam, To: Turnover}:     LabelRisky,
		},
		Counters: map[string][]string{
			PickAndRoll:  {"Ice the side pick-and-roll toward the baseline", "Have the big drop to protect the rim", "Tag the roller from the weak side"},
			PickAndPop:   {"Switch the screen to stay attached to the popper", "Keep the big at the level of the screen"},
			Isolation:    {"Show early help from the nail", "Force the handler to the weaker hand", "Send a timed double team on the catch"},
			PostUp:       {"Front the post to deny the entry pass", "Dig from the passer's defender on the dribble"},
			Drive:        {"Build a wall at the rim with weak-side help", "Give a cushion and force pull-up twos"},
			Handoff:      {"Jump the handoff to take away the downhill path", "Switch late handoffs"},
			OffScreen:    {"Trail the shooter over the top of screens", "Have the screener's defender show high"},
			Cut:          {"Stay ball-side and deny backdoor cuts", "Sink the low man to take the rim"},
			SpotUp:       {"Close out under control and run off the line", "Limit help off the strong-side corner"},
			JumpShot:     {"Concede contested midrange attempts", "Stay down on pump fakes"},
			ThreePointer: {"Run the shooter off the line", "Switch off-ball screens to avoid open looks"},
			FastBreak:    {"Get back in numbers and build the wall", "Foul early when outnumbered"},
			Transition:   {"Sprint back and match up before the ball crosses half court"},
			Floater:      {"Contest with the big from the front of the rim"},
			Layup:        {"Wall up vertically at the rim", "Take charges on straight-line drives"},
			Pass:         {"Pressure passing lanes and deny reversals"},
		},
	}
}

// ActionCategory returns the category of a quick action.
func (t Tables) ActionCategory(name string) (tag.Category, bool) {
	for _, qa := range t.QuickActions {
		if qa.Name == name {
			return qa.Category, true
		}
	}
	return "", false
}
