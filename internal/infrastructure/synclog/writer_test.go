package synclog

import (
	"bufio"
	"context"
	"os"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtvision/court-vision/internal/domain/syncrun"
)

func TestWriter_AppendsOneLinePerRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := NewWriter(dir)
	started := time.Date(2025, 1, 10, 6, 0, 0, 0, time.UTC)

	for i, entity := range []syncrun.Entity{syncrun.EntityTeams, syncrun.EntityPlayers} {
		s := syncrun.NewSummary(entity, started)
		s.Record(syncrun.OutcomeCreated)
		s.AddErrorf("record %d failed", i)
		s.Finish(started.Add(1500 * time.Millisecond))
		require.NoError(t, w.Append(context.Background(), syncrun.Run{ID: "run-" + string(entity), Summary: *s, Status: s.Status()}))
	}

	f, err := os.Open(w.Path(started))
	require.NoError(t, err)
	defer f.Close()

	var lines []record
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec record
		require.NoError(t, sonic.Unmarshal(scanner.Bytes(), &rec))
		lines = append(lines, rec)
	}
	require.NoError(t, scanner.Err())
	require.Len(t, lines, 2)

	assert.Equal(t, "teams", lines[0].Entity)
	assert.Equal(t, "partial", lines[0].Status)
	assert.Equal(t, int64(1500), lines[0].DurationMs)
	assert.Equal(t, []string{"record 0 failed"}, lines[0].ErrorMessages)
	assert.Equal(t, "run-players", lines[1].RunID)
}

func TestWriter_PathUsesFinishDay(t *testing.T) {
	t.Parallel()

	w := NewWriter("logs")
	got := w.Path(time.Date(2025, 3, 2, 23, 59, 0, 0, time.UTC))
	if got != "logs/sync-2025-03-02.jsonl" {
		t.Fatalf("unexpected path: %s", got)
	}
}
