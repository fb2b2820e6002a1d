package main

import (
	"context"
	"time"

	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type adminDeps struct {
	fx.In

	Admin usecase.AdminUsecase
}

// filterFlags binds the shared entry filter to a command's flags.
type filterFlags struct {
	ids      []string
	statuses []string
	userID   string
	category string
	before   string
}

func (f *filterFlags) register(cmd *cobra.Command, withStatus bool) {
	cmd.Flags().StringSliceVar(&f.ids, "id", nil, "entry ID, repeatable")
	if withStatus {
		cmd.Flags().StringSliceVar(&f.statuses, "status", nil, "pending, processing, sent, failed or cancelled; repeatable")
	}
	cmd.Flags().StringVar(&f.userID, "user", "", "recipient user ID")
	cmd.Flags().StringVar(&f.category, "category", "", "notification category")
	cmd.Flags().StringVar(&f.before, "before", "", "only entries created before this RFC3339 time")
}

func (f *filterFlags) query() (*usecase.EntryQuery, error) {
	query := &usecase.EntryQuery{
		Statuses: f.statuses,
		Category: f.category,
	}

	for _, raw := range f.ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid --id %q", raw)
		}
		query.IDs = append(query.IDs, id)
	}

	if f.userID != "" {
		id, err := uuid.Parse(f.userID)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid --user %q", f.userID)
		}
		query.UserID = &id
	}

	if f.before != "" {
		before, err := time.Parse(time.RFC3339, f.before)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid --before %q", f.before)
		}
		query.Before = &before
	}

	return query, nil
}

func listCommand() *cobra.Command {
	var (
		filter        filterFlags
		limit, offset int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List queue entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, err := filter.query()
			if err != nil {
				return err
			}
			query.Limit, query.Offset = limit, offset

			return run(cmd, func(ctx context.Context, deps adminDeps) error {
				page, err := deps.Admin.ListEntries(ctx, query)
				if err != nil {
					return err
				}

				return printJSON(cmd.OutOrStdout(), page)
			})
		},
	}
	filter.register(cmd, true)
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "page offset")

	return cmd
}

func statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count entries per status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, deps adminDeps) error {
				counts, err := deps.Admin.Stats(ctx)
				if err != nil {
					return err
				}

				return printJSON(cmd.OutOrStdout(), counts)
			})
		},
	}
}

func retryFailedCommand() *cobra.Command {
	var filter filterFlags

	cmd := &cobra.Command{
		Use:   "retry-failed",
		Short: "Move failed entries back to pending with a fresh retry budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, err := filter.query()
			if err != nil {
				return err
			}

			return run(cmd, func(ctx context.Context, deps adminDeps) error {
				affected, err := deps.Admin.RetryFailed(ctx, query)
				if err != nil {
					return err
				}

				return printJSON(cmd.OutOrStdout(), map[string]int64{"retried": affected})
			})
		},
	}
	filter.register(cmd, false)

	return cmd
}

func cancelCommand() *cobra.Command {
	var filter filterFlags

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel pending and processing entries matching a filter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, err := filter.query()
			if err != nil {
				return err
			}

			return run(cmd, func(ctx context.Context, deps adminDeps) error {
				affected, err := deps.Admin.Cancel(ctx, query)
				if err != nil {
					return err
				}

				return printJSON(cmd.OutOrStdout(), map[string]int64{"cancelled": affected})
			})
		},
	}
	filter.register(cmd, false)

	return cmd
}

func purgeCommand() *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete terminal entries older than the retention",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, deps adminDeps) error {
				purged, err := deps.Admin.Purge(ctx, olderThan)
				if err != nil {
					return err
				}

				return printJSON(cmd.OutOrStdout(), map[string]int64{"purged": purged})
			})
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "override queue.retention")

	return cmd
}
