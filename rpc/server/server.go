package server

import (
	"fmt"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/ValentinKolb/dWeet/lib/store"
	"github.com/ValentinKolb/dWeet/lib/store/lstore"
	"github.com/ValentinKolb/dWeet/rpc/common"
	"github.com/ValentinKolb/dWeet/rpc/serializer"
	"github.com/ValentinKolb/dWeet/rpc/transport"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
	gometrics "github.com/rcrowley/go-metrics"
)

var Logger = logger.GetLogger("rpc")

// serverShard is a struct that represents a shard in the RPC server
// It contains the store it encapsulates and the adapter
// that handles requests for the store
type serverShard struct {
	Store   store.ISocialStore
	Adapter IRPCServerAdapter
}

// NewRPCServer creates a new RPC server
// It takes a config, transport and serializer as parameters
//
// Usage:
//
//	s := server.NewRPCServer(
//		*config,
//		http.NewHttpServerTransport(),
//		serializer.NewJSONSerializer(),
//	)
//
//	if err := s.Serve(); err != nil {
//		panic(err)
//	 }
func NewRPCServer(
	config common.ServerConfig,
	transport transport.IRPCServerTransport,
	serializer serializer.IRPCSerializer,
) *rpcServer {
	// https://github.com/golang/go/issues/17393
	if runtime.GOOS == "darwin" {
		signal.Ignore(syscall.Signal(0xd))
	}

	// Create the RPC server
	return &rpcServer{
		config:     config,
		transport:  transport,
		serializer: serializer,
		shards:     xsync.NewMapOf[uint64, serverShard](),
		stats:      gometrics.NewRegistry(),
	}
}

type rpcServer struct {
	config     common.ServerConfig
	transport  transport.IRPCServerTransport
	serializer serializer.IRPCSerializer
	shards     *xsync.MapOf[uint64, serverShard]

	// request timers per message type and error counters
	stats gometrics.Registry
}

// handle decodes a request, lets the adapter of the shard handle it and
// encodes the response
func (s *rpcServer) handle(shardId uint64, req []byte) []byte {
	start := time.Now()
	var msg common.Message
	var respMsg *common.Message

	// Get appropriate shard
	shard, ok := s.shards.Load(shardId)

	if !ok {
		// Case shard does not exist -> error
		respMsg = common.NewErrorResponse(fmt.Sprintf("shard %d not found", shardId))
	} else if err := s.serializer.Deserialize(req, &msg); err != nil {
		respMsg = common.NewErrorResponse(fmt.Sprintf("failed to deserialize request: %s", err))
	} else {
		// Let the adapter handle the request
		respMsg = shard.Adapter.Handle(&msg, shard.Store)
	}

	// Track request statistics
	gometrics.GetOrRegisterTimer("rpc."+msg.MsgType.String(), s.stats).UpdateSince(start)
	if respMsg.Err != "" {
		gometrics.GetOrRegisterCounter("rpc.errors", s.stats).Inc(1)
		Logger.Debugf("shard %d: %s failed: %s", shardId, msg.MsgType, respMsg.Err)
	}

	// Return result
	val, err := s.serializer.Serialize(*respMsg)
	if err != nil {
		Logger.Errorf("failed to serialize response: %v", err)
		val, _ = s.serializer.Serialize(*common.NewErrorResponse(fmt.Sprintf("failed to serialize response: %s", err)))
	}
	return val
}

// statsLogger forwards the periodic go-metrics reports to the rpc logger
type statsLogger struct {
	log logger.ILogger
}

func (l statsLogger) Printf(format string, v ...interface{}) {
	l.log.Infof(format, v...)
}

func (s *rpcServer) init() error {

	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("invalid server config: %w", err)
	}

	// Init logger
	if err := common.InitLoggers(s.config.LogLevel); err != nil {
		return err
	}

	Logger.Infof("Created RPC Server (%s serializer)", s.serializer.Name())
	Logger.Infof("%s", s.config.String())

	// Every shard is an independent local store
	for _, shardConfig := range s.config.Shards {
		_, loaded := s.shards.LoadOrStore(shardConfig.ShardID, serverShard{
			Store: lstore.NewLocalStore(lstore.LLRBEngines, &lstore.Options{
				Name: strconv.FormatUint(shardConfig.ShardID, 10),
			}),
			Adapter: NewISocialStoreServerAdapter(),
		})
		if loaded {
			return fmt.Errorf("shard %d configured twice", shardConfig.ShardID)
		}
		Logger.Infof("created local store for shard %d", shardConfig.ShardID)
	}

	// Periodic request statistics
	if s.config.StatsInterval > 0 {
		go gometrics.Log(s.stats, time.Duration(s.config.StatsInterval)*time.Second, statsLogger{log: Logger})
	}

	Logger.Infof("dWeet setup completed successfully")

	// Configure the transport layer
	s.transport.RegisterHandler(s.handle)

	return nil
}

// Serve starts the RPC server
// This function will also initialize the server plus the shards and start the transport layer
func (s *rpcServer) Serve() error {
	err := s.init()
	if err != nil {
		return err
	}
	return s.transport.Listen(s.config)
}
