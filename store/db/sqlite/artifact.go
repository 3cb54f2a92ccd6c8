package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/hamzemohamed32/codementor/store"
)

func (d *DB) CreateArtifact(ctx context.Context, create *store.Artifact) (*store.Artifact, error) {
	if create.Type == "" {
		create.Type = store.ArtifactTypeOther
	}
	if create.Version == 0 {
		create.Version = 1
	}

	fields := []string{"uid", "project_id", "type", "title", "content", "version"}
	args := []any{create.UID, create.ProjectID, create.Type, create.Title, create.Content, create.Version}

	stmt := `INSERT INTO artifact (` + strings.Join(fields, ", ") + `)
		VALUES (` + placeholders(len(args)) + `)
		RETURNING id, created_ts`

	if err := d.db.QueryRowContext(ctx, stmt, args...).Scan(
		&create.ID,
		&create.CreatedTs,
	); err != nil {
		return nil, fmt.Errorf("failed to create artifact: %w", err)
	}

	return create, nil
}

func (d *DB) ListArtifacts(ctx context.Context, find *store.FindArtifact) ([]*store.Artifact, error) {
	where, args := []string{"1 = 1"}, []any{}

	if v := find.ID; v != nil {
		where, args = append(where, "id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.UID; v != nil {
		where, args = append(where, "uid = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.ProjectID; v != nil {
		where, args = append(where, "project_id = "+placeholder(len(args)+1)), append(args, *v)
	}
	if v := find.Type; v != nil {
		where, args = append(where, "type = "+placeholder(len(args)+1)), append(args, *v)
	}

	query := `SELECT id, uid, project_id, type, title, content, version, created_ts
		FROM artifact WHERE ` + strings.Join(where, " AND ") + ` ORDER BY id ASC`
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list artifacts: %w", err)
	}
	defer rows.Close()

	list := make([]*store.Artifact, 0)
	for rows.Next() {
		a := &store.Artifact{}
		if err := rows.Scan(&a.ID, &a.UID, &a.ProjectID, &a.Type, &a.Title, &a.Content, &a.Version, &a.CreatedTs); err != nil {
			return nil, fmt.Errorf("failed to scan artifact: %w", err)
		}
		list = append(list, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate artifacts: %w", err)
	}

	return list, nil
}
