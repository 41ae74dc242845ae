package user

import (
	"github.com/ValentinKolb/dWeet/cmd/util"
	"github.com/ValentinKolb/dWeet/lib/store"
	"github.com/spf13/cobra"
)

var (
	rpcStore store.ISocialStore

	// UserCommands represents the user command group
	UserCommands = &cobra.Command{
		Use:               "user",
		Short:             "Add and query users",
		PersistentPreRunE: setupUserClient,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common RPC flags to the user command
	util.SetupRPCClientFlags(UserCommands)

	// Add subcommands
	UserCommands.AddCommand(addCmd)
	UserCommands.AddCommand(getCmd)
	UserCommands.AddCommand(listCmd)
	UserCommands.AddCommand(searchCmd)
	UserCommands.AddCommand(joinedBeforeCmd)
}

// setupUserClient initializes the RPC store client
func setupUserClient(cmd *cobra.Command, _ []string) (err error) {
	rpcStore, err = util.NewRPCStore(cmd)
	return err
}
