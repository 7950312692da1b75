package testing

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/arloliu/rota/types"
)

// ProfileKeyPrefix matches source.DefaultKVPrefix.
const ProfileKeyPrefix = "profile."

// StartEmbeddedNATS starts an in-process NATS server with JetStream on a random port.
//
// Storage lives in t.TempDir(); the server and the returned connection are
// shut down when the test completes.
//
// Parameters:
//   - t: Testing context for logging and cleanup
//
// Returns:
//   - *server.Server: The embedded NATS server instance
//   - *nats.Conn: Connected NATS client
//
// Example:
//
//	_, nc := rotatest.StartEmbeddedNATS(t)
//	kv := rotatest.CreateJetStreamKV(t, nc, "rota-schedules")
//	pub := publish.NewKVPublisher(kv)
func StartEmbeddedNATS(t *testing.T) (*server.Server, *nats.Conn) {
	t.Helper()

	ns, err := server.NewServer(&server.Options{
		Host:      "127.0.0.1",
		Port:      -1,
		JetStream: true,
		StoreDir:  t.TempDir(),
		NoLog:     true,
	})
	if err != nil {
		t.Fatalf("create embedded NATS server: %v", err)
	}

	go ns.Start()

	if !ns.ReadyForConnections(5 * time.Second) {
		ns.Shutdown()
		t.Fatal("embedded NATS server not ready within 5s")
	}

	nc, err := nats.Connect(ns.ClientURL(), nats.Timeout(2*time.Second))
	if err != nil {
		ns.Shutdown()
		t.Fatalf("connect to embedded NATS server: %v", err)
	}

	t.Cleanup(func() {
		nc.Close()
		ns.Shutdown()
		ns.WaitForShutdown()
	})

	return ns, nc
}

// CreateJetStreamKV creates an in-memory KV bucket keeping five revisions per key.
//
// Parameters:
//   - t: Testing context
//   - nc: NATS connection (from StartEmbeddedNATS)
//   - bucketName: Bucket name, unique per test
//
// Returns:
//   - jetstream.KeyValue: The created bucket
func CreateJetStreamKV(t *testing.T, nc *nats.Conn, bucketName string) jetstream.KeyValue {
	t.Helper()

	js, err := jetstream.New(nc)
	if err != nil {
		t.Fatalf("jetstream context: %v", err)
	}

	kv, err := js.CreateKeyValue(t.Context(), jetstream.KeyValueConfig{
		Bucket:      bucketName,
		Description: "rota test bucket",
		History:     5,
		Storage:     jetstream.MemoryStorage,
	})
	if err != nil {
		t.Fatalf("create KV bucket %s: %v", bucketName, err)
	}

	return kv
}

// PutProfiles stores profiles as JSON under ProfileKeyPrefix+ID, the layout source.KV reads.
func PutProfiles(t *testing.T, kv jetstream.KeyValue, profiles ...types.Profile) {
	t.Helper()

	for _, p := range profiles {
		data, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("marshal profile %s: %v", p.ID, err)
		}
		if _, err := kv.Put(t.Context(), ProfileKeyPrefix+p.ID, data); err != nil {
			t.Fatalf("put profile %s: %v", p.ID, err)
		}
	}
}
