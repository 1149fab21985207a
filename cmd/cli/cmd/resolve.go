package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/wadjakorntonsri/go-link-hub/pkg/core/domain"
	"github.com/wadjakorntonsri/go-link-hub/pkg/core/resolver"
)

type resolveOptions struct {
	slug     string
	ua       string
	at       string
	location domain.UserLocation
}

func newResolveCmd(opts *rootOptions) *cobra.Command {
	ro := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Preview which links a visitor would see, without counting a view",
		Example: `  linkhub resolve --slug demo --ua "Mozilla/5.0 (iPhone; ...)" --at 12:30
  linkhub resolve --slug demo --country India --city Mumbai`,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := clockAt(ro.at, time.Now())
			if err != nil {
				return err
			}

			repo, err := opts.openRepo()
			if err != nil {
				return err
			}
			defer repo.Close()

			hub, err := repo.GetHubBySlug(cmd.Context(), ro.slug)
			if err != nil {
				return err
			}
			if hub == nil {
				return fmt.Errorf("%w: %s", domain.ErrHubNotFound, ro.slug)
			}
			links, err := repo.ListLinksByHub(cmd.Context(), hub.ID)
			if err != nil {
				return err
			}

			loc := ro.location
			rc := domain.NewRequestContext(ro.ua, &loc, now)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Hub %q at %s, device %s\n\n", hub.Slug, now.Format("15:04"), resolver.ClassifyDevice(ro.ua))

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tVISIBLE\tREASON\tRULE")
			for _, l := range links {
				v := resolver.Explain(l, rc)
				rule := "-"
				if v.RuleIndex >= 0 {
					r := l.Rules[v.RuleIndex]
					rule = fmt.Sprintf("#%d %s %s %s", v.RuleIndex, r.Action, r.Kind, r.Value)
				}
				fmt.Fprintf(tw, "%d\t%s\t%t\t%s\t%s\n", l.ID, l.Title, v.Visible, v.Reason, rule)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(out, "\nResolved order:")
			for i, l := range resolver.Resolve(links, rc) {
				fmt.Fprintf(out, "%d. %s (score %.2f) %s\n", i+1, l.Title, resolver.Score(l), l.OriginalURL)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&ro.slug, "slug", "", "hub slug")
	f.StringVar(&ro.ua, "ua", "", "visitor User-Agent")
	f.StringVar(&ro.at, "at", "", "visitor local time as HH:MM (default now)")
	f.StringVar(&ro.location.Country, "country", "", "visitor country")
	f.StringVar(&ro.location.Region, "region", "", "visitor region or state")
	f.StringVar(&ro.location.City, "city", "", "visitor city")
	f.StringVar(&ro.location.PostalCode, "postal", "", "visitor postal code")
	_ = cmd.MarkFlagRequired("slug")
	return cmd
}

// clockAt returns base with its wall clock replaced by hhmm. Empty keeps base.
func clockAt(hhmm string, base time.Time) (time.Time, error) {
	if hhmm == "" {
		return base, nil
	}
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("--at must be HH:MM: %w", err)
	}
	return time.Date(base.Year(), base.Month(), base.Day(), t.Hour(), t.Minute(), 0, 0, base.Location()), nil
}
