package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mbuckley/feprep/ent"
	"github.com/mbuckley/feprep/ent/setting"
)

// settingsRepo implements SettingsRepo using the ent client.
type settingsRepo struct {
	client *ent.Client
}

func (r *settingsRepo) Get(ctx context.Context, key string) (string, error) {
	row, err := r.client.Setting.Query().
		Where(setting.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query setting %q: %w", key, err)
	}
	return row.Value, nil
}

func (r *settingsRepo) Set(ctx context.Context, key, value string) error {
	n, err := r.client.Setting.Update().
		Where(setting.Key(key)).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update setting %q: %w", key, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Setting.Create().
		SetKey(key).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save setting %q: %w", key, err)
	}
	return nil
}

func (r *settingsRepo) GetInt(ctx context.Context, key string) (int, error) {
	v, err := r.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		// Malformed persisted state falls back to the zero value.
		return 0, nil
	}
	return n, nil
}

func (r *settingsRepo) SetInt(ctx context.Context, key string, value int) error {
	return r.Set(ctx, key, strconv.Itoa(value))
}
