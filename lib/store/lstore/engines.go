package lstore

import (
	"github.com/ValentinKolb/dWeet/lib/db/engines/llrb"
	"github.com/ValentinKolb/dWeet/lib/store"
)

// LLRBEngines is a store.DBFactory creating the llrb engines
func LLRBEngines() store.Engines {
	return store.Engines{
		Users:     llrb.NewUserDirectory(),
		Weets:     llrb.NewMessageStore(),
		Followers: llrb.NewFollowerGraph(),
	}
}
