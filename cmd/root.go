package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/dWeet/cmd/follow"
	"github.com/ValentinKolb/dWeet/cmd/info"
	"github.com/ValentinKolb/dWeet/cmd/serve"
	"github.com/ValentinKolb/dWeet/cmd/user"
	"github.com/ValentinKolb/dWeet/cmd/util"
	"github.com/ValentinKolb/dWeet/cmd/weet"
	"github.com/spf13/cobra"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "dweet",
		Short: "in-memory social network store",
		Long: fmt.Sprintf(`dWeet (v%s)

An in-memory store for users, weets and follow relationships written in Go,
indexed by left-leaning red-black trees and served over HTTP.`, Version),
		SilenceUsage: true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of dWeet",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dWeet v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(serve.ServeCmd)
	RootCmd.AddCommand(user.UserCommands)
	RootCmd.AddCommand(weet.WeetCommands)
	RootCmd.AddCommand(follow.FollowCommands)
	RootCmd.AddCommand(info.InfoCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "serializer"
	RootCmd.PersistentFlags().String(key, "json", util.WrapString("serializer to use (json, gob)"))
	key = "transport"
	RootCmd.PersistentFlags().String(key, "http", util.WrapString("transport to use (http)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
