package flashpoint

import (
	"context"
	"database/sql"
)

// pgDataset loads flashpoint records from the flashpoints table. The table
// is input data only; nothing from the session is ever written back.
type pgDataset struct {
	db *sql.DB
}

func NewPgDataset(db *sql.DB) Dataset {
	return &pgDataset{db: db}
}

func (d *pgDataset) Load(ctx context.Context) ([]Record, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT srno, title, zone
		FROM flashpoints
		ORDER BY srno ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.Srno,
			&rec.Title,
			&rec.Zone,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}
