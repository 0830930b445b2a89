package querybuilder

import (
	"errors"
	"reflect"
	"strings"
)

// Columns lists the db-tagged columns of a struct type, in field order.
func Columns(model any) []string {
	cols, _, err := modelFields(model)
	if err != nil {
		return nil
	}
	return cols
}

// UpsertModel prepares an insert of every db-tagged field of model that,
// on key conflict, updates the remaining columns only when they changed.
// Timestamps are left to column defaults and OnConflictSet.
func UpsertModel(table string, model any, key []string) (*InsertBuilder, error) {
	cols, vals, err := modelFields(model)
	if err != nil {
		return nil, err
	}

	isKey := make(map[string]struct{}, len(key))
	for _, k := range key {
		isKey[k] = struct{}{}
	}
	update := make([]string, 0, len(cols))
	for _, col := range cols {
		if _, ok := isKey[col]; ok {
			continue
		}
		if col == "created_at" || col == "updated_at" {
			continue
		}
		update = append(update, col)
	}

	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		OnConflictUpdate(key, update...).
		OnlyIfChanged(), nil
}

func modelFields(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, errors.New("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, errors.New("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		col, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		col = strings.TrimSpace(col)
		if col == "" || col == "-" {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.Field(i).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, errors.New("model has no db columns")
	}
	return cols, vals, nil
}
