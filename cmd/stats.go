package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/clanwatch/clanwatch/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the tracked roster and latest scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		members, err := st.Roster(store.ArchiveDelete).Snapshot(cmd.Context())
		if err != nil {
			return err
		}
		if len(members) == 0 {
			fmt.Println("No members recorded yet.")
			return nil
		}

		sort.SliceStable(members, func(i, j int) bool {
			si, sj := 0, 0
			if members[i].LastScore != nil {
				si = members[i].LastScore.Score
			}
			if members[j].LastScore != nil {
				sj = members[j].LastScore.Score
			}
			return si > sj
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSCORE\tLAST SEEN\tACTIVE")
		for _, m := range members {
			score := "-"
			if m.LastScore != nil {
				score = fmt.Sprintf("%d", m.LastScore.Score)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\n",
				m.Name, score, m.LastObservedAt.Format("2006-01-02 15:04"), m.Active)
		}
		return w.Flush()
	},
}
