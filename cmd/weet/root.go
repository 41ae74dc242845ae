package weet

import (
	"github.com/ValentinKolb/dWeet/cmd/util"
	"github.com/ValentinKolb/dWeet/lib/store"
	"github.com/spf13/cobra"
)

var (
	rpcStore store.ISocialStore

	// WeetCommands represents the weet command group
	WeetCommands = &cobra.Command{
		Use:               "weet",
		Short:             "Post and query weets and topics",
		PersistentPreRunE: setupWeetClient,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common RPC flags to the weet command
	util.SetupRPCClientFlags(WeetCommands)

	// Add subcommands
	WeetCommands.AddCommand(addCmd)
	WeetCommands.AddCommand(getCmd)
	WeetCommands.AddCommand(listCmd)
	WeetCommands.AddCommand(byUserCmd)
	WeetCommands.AddCommand(searchCmd)
	WeetCommands.AddCommand(onCmd)
	WeetCommands.AddCommand(beforeCmd)
	WeetCommands.AddCommand(trendingCmd)
	WeetCommands.AddCommand(mentionsCmd)
}

// setupWeetClient initializes the RPC store client
func setupWeetClient(cmd *cobra.Command, _ []string) (err error) {
	rpcStore, err = util.NewRPCStore(cmd)
	return err
}
