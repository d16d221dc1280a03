package pgx

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"

	"github.com/Mrzain17/storefront/core"
)

func (a *Adapter) Get(ctx context.Context, userID string) (*core.UserProfile, error) {
	q := `SELECT doc FROM public.user_profiles WHERE user_id = $1`

	var doc []byte
	err := a.pool.QueryRow(ctx, q, userID).Scan(&doc)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrDocumentNotFound
		}
		return nil, err
	}

	profile := &core.UserProfile{}
	if err := json.Unmarshal(doc, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (a *Adapter) Set(ctx context.Context, userID string, profile *core.UserProfile) error {
	doc, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	q := `INSERT INTO public.user_profiles (user_id, doc) VALUES ($1, $2)
	      ON CONFLICT (user_id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`
	_, err = a.pool.Exec(ctx, q, userID, doc)
	return err
}

// Merge applies a shallow jsonb merge: top-level fields in the update
// replace the stored ones, everything else is preserved.
func (a *Adapter) Merge(ctx context.Context, userID string, fields map[string]any) error {
	update, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	q := `UPDATE public.user_profiles SET doc = doc || $2, updated_at = now() WHERE user_id = $1`
	tag, err := a.pool.Exec(ctx, q, userID, update)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrDocumentNotFound
	}
	return nil
}
