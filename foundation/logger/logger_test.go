package logger_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ardanlabs/hashledger/foundation/logger"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_EvHandler(t *testing.T) {
	t.Log("Given the need to log blockchain events.")
	{
		path := filepath.Join(t.TempDir(), "log.json")

		log, err := logger.New("TEST", path)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to construct the logger: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to construct the logger.", success)

		ev := logger.EvHandler(log, "trace-1")
		ev("chain: Insert: blk[%d]: genesis", 0)
		log.Sync()

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to read the log file: %v", failed, err)
		}

		var entry map[string]any
		if err := json.Unmarshal(data, &entry); err != nil {
			t.Fatalf("\t%s\tShould write one json entry: %v", failed, err)
		}
		t.Logf("\t%s\tShould write one json entry.", success)

		exp := map[string]string{
			"service": "TEST",
			"traceid": "trace-1",
			"msg":     "chain: Insert: blk[0]: genesis",
		}
		for k, v := range exp {
			if entry[k] != v {
				t.Fatalf("\t%s\tShould have %s set to %q, got %v.", failed, k, v, entry[k])
			}
		}
		t.Logf("\t%s\tShould have the service, trace id and message.", success)
	}
}
