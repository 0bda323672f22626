package commands

import (
	"context"
	"fmt"

	"github.com/wolfeidau/tenantdb/internal/store/postgres"
)

type AuditFeedCmd struct {
	DatabaseFlags
	PageSize int32  `help:"entries per page" default:"50"`
	Cursor   string `help:"resume from an opaque cursor returned by a previous run"`
	Pages    int    `help:"maximum pages to print" default:"1"`
}

// Run prints pages of the cross-tenant audit feed, newest first, following
// cursors between pages.
func (c *AuditFeedCmd) Run(ctx context.Context, globals *Globals) error {
	setupLogging(globals)

	st, err := postgres.Open(ctx, &postgres.Config{
		AdminURL: c.AdminURL,
		AppURL:   c.AppURL,
	})
	if err != nil {
		return err
	}
	defer st.Close()

	var cursor *postgres.Cursor
	if c.Cursor != "" {
		decoded, err := postgres.DecodeCursor(c.Cursor)
		if err != nil {
			return err
		}
		cursor = &decoded
	}

	for page := 0; page < c.Pages; page++ {
		var feed *postgres.AuditFeedPage
		err := st.WithAdmin(ctx, func(ctx context.Context, tx *postgres.AdminTx) error {
			feed, err = tx.ListAuditFeed(ctx, postgres.ListAuditFeedParams{
				Limit:  c.PageSize,
				Cursor: cursor,
			})
			return err
		})
		if err != nil {
			return err
		}

		for _, e := range feed.Entries {
			actor := "-"
			if e.ActorEmail != nil {
				actor = *e.ActorEmail
			}
			fmt.Printf("%s  %-24s %-12s org=%s actor=%s\n",
				e.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
				e.Action, e.Entity, e.OrgID, actor)
		}

		if feed.NextCursor == nil {
			return nil
		}
		cursor = feed.NextCursor
		fmt.Printf("cursor: %s\n", cursor.Encode())
	}

	return nil
}
