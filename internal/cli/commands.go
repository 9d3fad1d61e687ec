package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/lifelog-timeline/internal/client"
	"github.com/heartmarshall/lifelog-timeline/internal/domain"
	"github.com/heartmarshall/lifelog-timeline/internal/tui"
)

func (a *app) loginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			username, _ := cmd.Flags().GetString("username")
			if username == "" {
				username = a.cfg.Username
			}
			if username == "" {
				return errors.New("--username is required")
			}

			password := a.deps.Getenv("LIFELOG_PASSWORD")
			if password == "" {
				fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			api := a.client()
			tok, err := api.Login(cmd.Context(), client.Credentials{
				Username:    username,
				Password:    password,
				ClientID:    a.cfg.ClientID,
				RedirectURI: a.cfg.RedirectURI,
			})
			if err != nil {
				return err
			}

			a.cfg.Username = username
			a.cfg.Token = tok.AccessToken
			if err := SaveConfig(a.configPath, a.cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (token valid for %s)\n",
				username, time.Duration(tok.ExpiresIn)*time.Second)
			return nil
		},
	}
	cmd.Flags().String("username", "", "login name")
	return cmd
}

func (a *app) dayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day [YYYY-MM-DD]",
		Short: "Show the entries of a day grouped by time",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.cfg.Location()
			if err != nil {
				return err
			}

			date := time.Now().In(loc).Format(time.DateOnly)
			if len(args) == 1 {
				if _, err := time.Parse(time.DateOnly, args[0]); err != nil {
					return fmt.Errorf("date %q: want YYYY-MM-DD", args[0])
				}
				date = args[0]
			}

			filters, _ := cmd.Flags().GetStringSlice("filter")
			if !cmd.Flags().Changed("filter") {
				filters = a.cfg.Filters
			}
			gap, _ := cmd.Flags().GetDuration("gap")
			if gap == 0 {
				gap = a.cfg.Gap.Duration
			}

			day, err := a.client().Day(cmd.Context(), client.DayQuery{Date: date, Filters: filters, Gap: gap})
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(day)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s  (%d of %d entries)\n", day.Date, day.Shown, day.Total)
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderDay(day.Day, loc, tui.PlainStyles()))
			return nil
		},
	}
	cmd.Flags().StringSlice("filter", nil, "only show these categories (repeatable or comma separated)")
	cmd.Flags().Duration("gap", 0, "split groups after this much time (default from config)")
	cmd.Flags().Bool("json", false, "print the day view as JSON")
	return cmd
}

func (a *app) entryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Add or remove entries",
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add an entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			schema, _ := flags.GetString("schema")
			title, _ := flags.GetString("title")
			description, _ := flags.GetString("description")
			source, _ := flags.GetString("source")
			atRaw, _ := flags.GetString("at")
			attrs, _ := flags.GetStringToString("attr")

			at := time.Now()
			if atRaw != "" {
				t, err := time.Parse(time.RFC3339, atRaw)
				if err != nil {
					return fmt.Errorf("--at %q: want RFC 3339", atRaw)
				}
				at = t
			}

			e := domain.Entry{
				Schema:         schema,
				Title:          title,
				Description:    description,
				DateOnTimeline: at,
				Source:         source,
			}
			if len(attrs) > 0 {
				e.ExtraAttributes = domain.Attributes{}
				for k, v := range attrs {
					e.ExtraAttributes[k] = v
				}
			}

			saved, err := a.client().SaveEntry(cmd.Context(), e)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), saved.ID)
			return nil
		},
	}
	add.Flags().String("schema", "journal", "entry schema, e.g. journal or file.image.jpeg")
	add.Flags().String("title", "", "title")
	add.Flags().String("description", "", "description")
	add.Flags().String("source", "frontend/cli", "source tag")
	add.Flags().String("at", "", "timestamp in RFC 3339 (default now)")
	add.Flags().StringToString("attr", nil, "extra attribute key=value (repeatable)")

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("id %q: %w", args[0], err)
			}
			if err := a.client().DeleteEntry(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", id)
			return nil
		},
	}

	cmd.AddCommand(add, rm)
	return cmd
}

func (a *app) archivesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "archives [type]",
		Short: "List archive types, or the archives of one type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api := a.client()
			if len(args) == 0 {
				endpoints, err := api.ArchiveEndpoints(cmd.Context())
				if err != nil {
					return err
				}
				return printEndpoints(cmd.OutOrStdout(), endpoints)
			}

			archives, err := api.Archives(cmd.Context(), domain.ArchiveType(args[0]))
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tFILES\tENTRIES\tPROCESSED\tDESCRIPTION")
			for _, ar := range archives {
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\n", ar.Key, len(ar.Files), ar.EntryCount, formatDate(ar.DateProcessed), ar.Description)
			}
			return w.Flush()
		},
	}
}

func (a *app) sourcesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sources [type]",
		Short: "List source types, or the sources of one type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api := a.client()
			if len(args) == 0 {
				endpoints, err := api.SourceEndpoints(cmd.Context())
				if err != nil {
					return err
				}
				return printEndpoints(cmd.OutOrStdout(), endpoints)
			}

			sources, err := api.Sources(cmd.Context(), domain.SourceType(args[0]))
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tENTRIES\tFROM\tUNTIL")
			for _, s := range sources {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", s.Key, s.EntryCount, formatDate(s.DateFrom), formatDate(s.DateUntil))
			}
			return w.Flush()
		},
	}
}

func (a *app) filtersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List the categories the timeline can be filtered by",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filters, err := a.client().Filters(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSHOWS")
			for _, f := range filters {
				fmt.Fprintf(w, "%s\t%s\n", f.Name, f.DisplayNamePlural)
			}
			return w.Flush()
		},
	}
}

func (a *app) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal timeline viewer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.deps.RunTUI(cmd.Context(), a.client(), a.cfg)
		},
	}
}

func runTUI(ctx context.Context, api *client.Client, cfg Config) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	return tui.Run(ctx, api, loc, cfg.Gap.Duration)
}

func printEndpoints(w io.Writer, endpoints map[string]string) error {
	types := make([]string, 0, len(endpoints))
	for typ := range endpoints {
		types = append(types, typ)
	}
	slices.Sort(types)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tURL")
	for _, typ := range types {
		fmt.Fprintf(tw, "%s\t%s\n", typ, endpoints[typ])
	}
	return tw.Flush()
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.DateOnly)
}
