package user

import (
	"fmt"

	"github.com/ValentinKolb/dWeet/cmd/util"
	"github.com/ValentinKolb/dWeet/lib/model"
	"github.com/spf13/cobra"
)

var (
	addCmd = &cobra.Command{
		Use:   "add [id] [name] [joined]",
		Short: "Adds a user, joined defaults to now",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ParseID("id", args[0])
			if err != nil {
				return err
			}
			joined, err := util.DateOrNow(args, 2)
			if err != nil {
				return err
			}
			ok, err := rpcStore.AddUser(model.User{ID: id, Name: args[1], DateJoined: joined})
			if err != nil {
				return err
			}
			if !ok {
				fmt.Printf("user %d already exists\n", id)
				return nil
			}
			fmt.Println("user added successfully")
			return nil
		},
	}
	getCmd = &cobra.Command{
		Use:   "get [id]",
		Short: "Gets a user by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := util.ParseID("id", args[0])
			if err != nil {
				return err
			}
			user, found, err := rpcStore.GetUser(id)
			if err != nil {
				return err
			}
			util.PrintFound(user, found, fmt.Sprintf("user %d", id))
			return nil
		},
	}
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Lists all users, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := rpcStore.GetUsers()
			if err != nil {
				return err
			}
			util.PrintList(users)
			return nil
		},
	}
	searchCmd = &cobra.Command{
		Use:   "search [text]",
		Short: "Lists users whose name contains text (case-sensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := rpcStore.GetUsersContaining(args[0])
			if err != nil {
				return err
			}
			util.PrintList(users)
			return nil
		},
	}
	joinedBeforeCmd = &cobra.Command{
		Use:   "joined-before [date]",
		Short: "Lists users that joined before date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := util.ParseDate(args[0])
			if err != nil {
				return err
			}
			users, err := rpcStore.GetUsersJoinedBefore(date)
			if err != nil {
				return err
			}
			util.PrintList(users)
			return nil
		},
	}
)
