package follow

import (
	"fmt"

	"github.com/ValentinKolb/dWeet/cmd/util"
	"github.com/spf13/cobra"
)

var (
	addCmd = &cobra.Command{
		Use:   "add [follower-id] [followed-id] [date]",
		Short: "Records that follower follows followed, date defaults to now",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			follower, followed, err := parsePair(args)
			if err != nil {
				return err
			}
			date, err := util.DateOrNow(args, 2)
			if err != nil {
				return err
			}
			ok, err := rpcStore.AddFollower(follower, followed, date)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("user %d can not follow user %d (self-follow or already following)\n", follower, followed)
				return nil
			}
			fmt.Println("follower added successfully")
			return nil
		},
	}
	followersCmd = &cobra.Command{
		Use:   "followers [user-id]",
		Short: "Lists the followers of a user, most recent first",
		Args:  cobra.ExactArgs(1),
		RunE: idListQuery(func(id int) ([]int, bool, error) {
			return rpcStore.GetFollowers(id)
		}),
	}
	followsCmd = &cobra.Command{
		Use:   "follows [user-id]",
		Short: "Lists the users a user follows, most recent first",
		Args:  cobra.ExactArgs(1),
		RunE: idListQuery(func(id int) ([]int, bool, error) {
			return rpcStore.GetFollows(id)
		}),
	}
	isCmd = &cobra.Command{
		Use:   "is [follower-id] [followed-id]",
		Short: "Checks whether follower follows followed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			follower, followed, err := parsePair(args)
			if err != nil {
				return err
			}
			ok, err := rpcStore.IsAFollower(follower, followed)
			if err != nil {
				return err
			}
			fmt.Println(ok)
			return nil
		},
	}
	countCmd = &cobra.Command{
		Use:   "count [user-id]",
		Short: "Prints the number of followers and follows of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ParseID("user-id", args[0])
			if err != nil {
				return err
			}
			followers, found, err := rpcStore.GetNumFollowers(id)
			if err != nil {
				return err
			}
			if !found {
				fmt.Printf("user %d not found\n", id)
				return nil
			}
			follows, _, err := rpcStore.GetNumFollows(id)
			if err != nil {
				return err
			}
			fmt.Printf("followers: %d\nfollows:   %d\n", followers, follows)
			return nil
		},
	}
	mutualFollowersCmd = &cobra.Command{
		Use:   "mutual-followers [user-id] [user-id]",
		Short: "Lists the users following both users",
		Args:  cobra.ExactArgs(2),
		RunE: pairListQuery(func(a, b int) ([]int, bool, error) {
			return rpcStore.GetMutualFollowers(a, b)
		}),
	}
	mutualFollowsCmd = &cobra.Command{
		Use:   "mutual-follows [user-id] [user-id]",
		Short: "Lists the users both users follow",
		Args:  cobra.ExactArgs(2),
		RunE: pairListQuery(func(a, b int) ([]int, bool, error) {
			return rpcStore.GetMutualFollows(a, b)
		}),
	}
	topCmd = &cobra.Command{
		Use:   "top",
		Short: "Lists the 10 users with the most followers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := rpcStore.GetTopUsers()
			if err != nil {
				return err
			}
			util.PrintList(ids)
			return nil
		},
	}
)

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func parsePair(args []string) (int, int, error) {
	a, err := util.ParseID("first user id", args[0])
	if err != nil {
		return 0, 0, err
	}
	b, err := util.ParseID("second user id", args[1])
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func printIDs(ids []int, found bool) {
	if !found {
		fmt.Println("user not found")
		return
	}
	util.PrintList(ids)
}

func idListQuery(query func(int) ([]int, bool, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := util.ParseID("user-id", args[0])
		if err != nil {
			return err
		}
		ids, found, err := query(id)
		if err != nil {
			return err
		}
		printIDs(ids, found)
		return nil
	}
}

func pairListQuery(query func(int, int) ([]int, bool, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, b, err := parsePair(args)
		if err != nil {
			return err
		}
		ids, found, err := query(a, b)
		if err != nil {
			return err
		}
		printIDs(ids, found)
		return nil
	}
}
