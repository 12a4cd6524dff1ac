package httptesting

import (
	"net/http"
	"os"
	"testing"
)

var AlwaysRecord = false

// RunHttpTestWithRecorder replays recordFile through a MockTransport, or, with
// TEST_HTTP_RECORD=1, sends real requests and saves them to recordFile when the
// returned function is called.
func RunHttpTestWithRecorder(t *testing.T, client *http.Client, recordFile string) (bool, func()) {
	if os.Getenv("TEST_HTTP_RECORD") == "1" || AlwaysRecord {
		base := client.Transport
		if base == nil {
			base = http.DefaultTransport
		}

		recorder := NewRecorder(base)
		client.Transport = recorder
		return true, func() {
			if err := recorder.Save(recordFile); err != nil {
				t.Errorf("failed to save recorded requests: %v", err)
			}
		}
	}

	recorder := NewRecorder(nil)
	if err := recorder.Load(recordFile); err != nil {
		t.Fatalf("failed to load recorded requests: %v", err)
	}

	mockTransport := &MockTransport{}
	if err := mockTransport.LoadFromRecorder(recorder); err != nil {
		t.Fatalf("failed to load recordings: %v", err)
	}

	client.Transport = mockTransport
	return false, func() {}
}
