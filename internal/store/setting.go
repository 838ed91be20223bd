package store

import (
	"context"
	"fmt"

	"github.com/mizutori/kioku/ent"
	"github.com/mizutori/kioku/ent/setting"
	"github.com/mizutori/kioku/internal/srs"
)

const policyKey = "policy"

type settingRepo struct {
	client *ent.Client
}

func (r *settingRepo) Policy(ctx context.Context) (srs.Kind, error) {
	row, err := r.client.Setting.Query().
		Where(setting.Key(policyKey)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query policy setting: %w", err)
	}
	return srs.Kind(row.Value), nil
}

// SetPolicy stores the collection's scheduling policy. Switching an
// established collection to a different policy would require migrating
// every item's progress, which has no defined semantics, so a conflicting
// stored value is an error rather than an overwrite.
func (r *settingRepo) SetPolicy(ctx context.Context, kind srs.Kind) error {
	current, err := r.Policy(ctx)
	if err != nil {
		return err
	}
	if current == kind {
		return nil
	}
	if current != "" {
		return fmt.Errorf("collection already uses policy %q; switching to %q requires a data migration", current, kind)
	}

	_, err = r.client.Setting.Create().
		SetKey(policyKey).
		SetValue(string(kind)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save policy setting: %w", err)
	}
	return nil
}
