package asset

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestLocalResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	res, err := NewResource(thisFile, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	if res.IsRemote() {
		t.Fatalf("expected local resource %s to not be remote", res.Path())
	}
	if res.RemotePath() != res.Path() {
		t.Fatalf("expected remote path of local resource to be %q; got %q", res.Path(), res.RemotePath())
	}
}

func TestLocalRelativeResource(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "scene.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte(`{"name":"other"}`), 0644); err != nil {
		t.Fatal(err)
	}

	parent, err := NewResource(filepath.Join(dir, "scene.json"), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer parent.Close()

	res, err := NewResource("other.json", parent)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	data, err := io.ReadAll(res)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"name":"other"}` {
		t.Fatalf("unexpected resource contents %q", string(data))
	}
}

func TestHttpResource(t *testing.T) {
	_, thisFile, _, _ := runtime.Caller(0)
	thisDir := filepath.Dir(thisFile)

	server := httptest.NewServer(http.FileServer(http.Dir(thisDir)))
	defer server.Close()

	fetchUrl := server.URL + "/" + filepath.Base(thisFile)
	res, err := NewResource(fetchUrl, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Close()

	if !res.IsRemote() {
		t.Fatalf("expected %s to be a remote resource", fetchUrl)
	}
	if res.RemotePath() != filepath.Base(thisFile) {
		t.Fatalf("expected remote path to be %q; got %q", filepath.Base(thisFile), res.RemotePath())
	}

	fetchUrl = server.URL + "/file-not-found.json"
	expError := fmt.Sprintf("resource: could not fetch '%s': status %d", fetchUrl, 404)
	_, err = NewResource(fetchUrl, nil)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestRelativeResources(t *testing.T) {
	serverHits := 0
	serverFn := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		serverHits++
		if r.URL.Path == "/scenes/main.json" {
			w.Write([]byte("OK"))
		} else if r.URL.Path == "/scenes/extra.json" {
			w.Write([]byte("OK"))
		} else {
			http.NotFound(w, r)
		}
	})
	server := httptest.NewServer(serverFn)
	defer server.Close()

	res1, err := NewResource(server.URL+"/scenes/main.json", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer res1.Close()
	res2, err := NewResource("extra.json", res1)
	if err != nil {
		t.Fatal(err)
	}
	defer res2.Close()

	if serverHits != 2 {
		t.Fatalf("expected server to receive 2 requests; got %d", serverHits)
	}
}

func TestUnsupportedResourceScheme(t *testing.T) {
	expError := "resource: unsupported scheme 'gopher'"
	_, err := NewResource("gopher://digging.json", nil)
	if err == nil || err.Error() != expError {
		t.Fatalf("expected to get: %s; got %v", expError, err)
	}
}

func TestResourceConnectionRefusedError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	deadURL := server.URL + "/scene.json"
	server.Close()

	_, err := NewResource(deadURL, nil)
	if err == nil || !strings.Contains(err.Error(), "could not fetch") {
		t.Fatalf("expected to get a fetch error; got %v", err)
	}
}

func TestResourceFromStream(t *testing.T) {
	res := NewResourceFromStream("embedded.json", strings.NewReader(`{"name":"embedded"}`))
	defer res.Close()

	if res.Path() != "embedded.json" {
		t.Fatalf("expected path to be embedded.json; got %s", res.Path())
	}
	data, err := io.ReadAll(res)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"name":"embedded"}` {
		t.Fatalf("unexpected stream contents %q", string(data))
	}
}
