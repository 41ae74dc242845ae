package follow

import (
	"github.com/ValentinKolb/dWeet/cmd/util"
	"github.com/ValentinKolb/dWeet/lib/store"
	"github.com/spf13/cobra"
)

var (
	rpcStore store.ISocialStore

	// FollowCommands represents the follow command group
	FollowCommands = &cobra.Command{
		Use:               "follow",
		Short:             "Add and query follow relationships",
		PersistentPreRunE: setupFollowClient,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common RPC flags to the follow command
	util.SetupRPCClientFlags(FollowCommands)

	// Add subcommands
	FollowCommands.AddCommand(addCmd)
	FollowCommands.AddCommand(followersCmd)
	FollowCommands.AddCommand(followsCmd)
	FollowCommands.AddCommand(isCmd)
	FollowCommands.AddCommand(countCmd)
	FollowCommands.AddCommand(mutualFollowersCmd)
	FollowCommands.AddCommand(mutualFollowsCmd)
	FollowCommands.AddCommand(topCmd)
}

// setupFollowClient initializes the RPC store client
func setupFollowClient(cmd *cobra.Command, _ []string) (err error) {
	rpcStore, err = util.NewRPCStore(cmd)
	return err
}
