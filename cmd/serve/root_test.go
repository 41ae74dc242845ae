package serve

import (
	"testing"
)

func TestParseShards(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		want    []uint64
		wantErr bool
	}{
		{"single", "100", []uint64{100}, false},
		{"list with spaces", "1, 2 ,3", []uint64{1, 2, 3}, false},
		{"empty", "", nil, true},
		{"not a number", "1,users", nil, true},
		{"duplicate", "1,2,1", nil, true},
		{"old format", "100=lstore", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shards, err := parseShards(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseShards(%q) error = %v, wantErr %v", tt.config, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(shards) != len(tt.want) {
				t.Fatalf("expected %d shards, got %v", len(tt.want), shards)
			}
			for i, id := range tt.want {
				if shards[i].ShardID != id {
					t.Errorf("shard %d: expected id %d, got %d", i, id, shards[i].ShardID)
				}
			}
		})
	}
}
