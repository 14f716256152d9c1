package transport

import (
	"fmt"
	"net/http"
	"time"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	// EventsPath serves the events of the latest audit.
	EventsPath = "/v1/reorg/events"
	// LegacyEventsPath is the file name older viewers fetch.
	LegacyEventsPath = "/doublespends.json"
)

// EventsSource returns the JSON array of the latest audit.
type EventsSource interface {
	Latest() []byte
}

// DialHealth connects a health client to the gRPC server at addr.
func DialHealth(addr string) (healthpb.HealthClient, *grpc.ClientConn, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("dial grpc %s: %w", addr, err)
	}
	return healthpb.NewHealthClient(conn), conn, nil
}

// NewGatewayMux builds the REST mux. /healthz proxies the gRPC health service
// when healthClient is set; the event paths are served when events is set.
func NewGatewayMux(healthClient healthpb.HealthClient, events EventsSource) (*gwruntime.ServeMux, error) {
	var opts []gwruntime.ServeMuxOption
	if healthClient != nil {
		opts = append(opts, gwruntime.WithHealthzEndpoint(healthClient))
	}
	gw := gwruntime.NewServeMux(opts...)
	if events == nil {
		return gw, nil
	}

	handler := eventsHandler(events)
	for _, path := range []string{EventsPath, LegacyEventsPath} {
		if err := gw.HandlePath(http.MethodGet, path, handler); err != nil {
			return nil, fmt.Errorf("register %s: %w", path, err)
		}
	}
	return gw, nil
}

func eventsHandler(events EventsSource) gwruntime.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(events.Latest())
	}
}

// NewHTTPHandler mounts the gateway and /metrics behind permissive CORS.
func NewHTTPHandler(gw http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())
	return cors.Default().Handler(mux)
}

// NewHTTPServer returns a server with conservative timeouts.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
}
