package weet

import (
	"fmt"
	"time"

	"github.com/ValentinKolb/dWeet/cmd/util"
	"github.com/ValentinKolb/dWeet/lib/model"
	"github.com/spf13/cobra"
)

var (
	addCmd = &cobra.Command{
		Use:   "add [id] [user-id] [message] [date]",
		Short: "Posts a weet, date defaults to now",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ParseID("id", args[0])
			if err != nil {
				return err
			}
			userID, err := util.ParseID("user-id", args[1])
			if err != nil {
				return err
			}
			date, err := util.DateOrNow(args, 3)
			if err != nil {
				return err
			}
			ok, err := rpcStore.AddWeet(model.Weet{ID: id, UserID: userID, Message: args[2], Date: date})
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("weet %d already exists\n", id)
				return nil
			}
			fmt.Println("weet added successfully")
			return nil
		},
	}
	getCmd = &cobra.Command{
		Use:   "get [id]",
		Short: "Gets a weet by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ParseID("id", args[0])
			if err != nil {
				return err
			}
			weet, found, err := rpcStore.GetWeet(id)
			if err != nil {
				return err
			}
			util.PrintFound(weet, found, fmt.Sprintf("weet %d", id))
			return nil
		},
	}
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Lists all weets, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			weets, err := rpcStore.GetWeets()
			if err != nil {
				return err
			}
			util.PrintList(weets)
			return nil
		},
	}
	byUserCmd = &cobra.Command{
		Use:   "by-user [user-id]",
		Short: "Lists the weets of a user, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := util.ParseID("user-id", args[0])
			if err != nil {
				return err
			}
			weets, err := rpcStore.GetWeetsByUser(userID)
			if err != nil {
				return err
			}
			util.PrintList(weets)
			return nil
		},
	}
	searchCmd = &cobra.Command{
		Use:   "search [text]",
		Short: "Lists weets whose message contains text (case-sensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weets, err := rpcStore.GetWeetsContaining(args[0])
			if err != nil {
				return err
			}
			util.PrintList(weets)
			return nil
		},
	}
	onCmd = &cobra.Command{
		Use:   "on [date]",
		Short: "Lists weets posted at exactly date (timestamp equality)",
		Args:  cobra.ExactArgs(1),
		RunE:  dateQuery(func(date time.Time) ([]model.Weet, error) { return rpcStore.GetWeetsOn(date) }),
	}
	beforeCmd = &cobra.Command{
		Use:   "before [date]",
		Short: "Lists weets posted before date",
		Args:  cobra.ExactArgs(1),
		RunE:  dateQuery(func(date time.Time) ([]model.Weet, error) { return rpcStore.GetWeetsBefore(date) }),
	}
	trendingCmd = &cobra.Command{
		Use:   "trending",
		Short: "Lists the 10 most mentioned topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			topics, ok, err := rpcStore.GetTrending()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("not enough topics for a trend yet")
				return nil
			}
			for i, topic := range topics {
				fmt.Printf("%2d. %s\n", i+1, topic)
			}
			return nil
		},
	}
	mentionsCmd = &cobra.Command{
		Use:   "mentions [topic]",
		Short: "Prints how often a topic (e.g. #cats) was used",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, found, err := rpcStore.GetTopicMentions(args[0])
			if err != nil {
				return err
			}
			util.PrintFound(n, found, fmt.Sprintf("topic %s", args[0]))
			return nil
		},
	}
)

// dateQuery creates the RunE function of a command listing weets for a date
func dateQuery(query func(time.Time) ([]model.Weet, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		date, err := util.ParseDate(args[0])
		if err != nil {
			return err
		}
		weets, err := query(date)
		if err != nil {
			return err
		}
		util.PrintList(weets)
		return nil
	}
}
