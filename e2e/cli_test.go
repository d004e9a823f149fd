package e2e_test

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unyx/random/internal/api"
	"github.com/unyx/random/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "rnd-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/rnd")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	// Create application
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := api.NewRouter(api.RouterConfig{
		Logger:       logger,
		Generator:    app.Generator,
		TokenService: app.TokenService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing

type generateResponse struct {
	Value    string `json:"value"`
	Strength string `json:"strength"`
}

type alphabetResponse struct {
	Flags    string `json:"flags"`
	Alphabet string `json:"alphabet"`
	Size     int    `json:"size"`
}

type tokenResponse struct {
	ID       string `json:"id"`
	Value    string `json:"value"`
	Purpose  string `json:"purpose"`
	Strength string `json:"strength"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Strength string `json:"strength"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "strong", resp.Strength)
}

func TestCLI_GenerateBytes(t *testing.T) {
	cli := newCLIRunner(t, "http://unused")

	output, err := cli.run("bytes", "--length", "16")
	require.NoError(t, err, "output: %s", output)

	var resp generateResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "strong", resp.Strength)

	data, err := hex.DecodeString(resp.Value)
	require.NoError(t, err)
	assert.Len(t, data, 16)
}

func TestCLI_GenerateInt(t *testing.T) {
	cli := newCLIRunner(t, "http://unused")

	output, err := cli.run("int", "--min", "5", "--max", "10")
	require.NoError(t, err, "output: %s", output)

	var resp generateResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))

	value, err := strconv.ParseInt(resp.Value, 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, value, int64(5))
	assert.LessOrEqual(t, value, int64(10))
}

func TestCLI_SeededGenerationIsDeterministic(t *testing.T) {
	cli := newCLIRunner(t, "http://unused")

	first, err := cli.run("string", "--length", "24", "--seed", "e2e-seed")
	require.NoError(t, err, "output: %s", first)

	second, err := cli.run("string", "--length", "24", "--seed", "e2e-seed")
	require.NoError(t, err, "output: %s", second)

	assert.Equal(t, first, second)

	var resp generateResponse
	require.NoError(t, json.Unmarshal([]byte(first), &resp))
	assert.Len(t, resp.Value, 24)
	assert.Equal(t, "none", resp.Strength)
}

func TestCLI_GenerateStringWithFlags(t *testing.T) {
	cli := newCLIRunner(t, "http://unused")

	output, err := cli.run("string", "--length", "40", "--flags", "hex-upper")
	require.NoError(t, err, "output: %s", output)

	var resp generateResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Len(t, resp.Value, 40)
	for _, c := range resp.Value {
		assert.Contains(t, "0123456789ABCDEF", string(c))
	}
}

func TestCLI_GenerateCount(t *testing.T) {
	cli := newCLIRunner(t, "http://unused")

	output, err := cli.run("bool", "--count", "5")
	require.NoError(t, err, "output: %s", output)

	// One JSON document per value.
	dec := json.NewDecoder(strings.NewReader(output))
	n := 0
	for dec.More() {
		var resp generateResponse
		require.NoError(t, dec.Decode(&resp))
		assert.Contains(t, []string{"true", "false"}, resp.Value)
		n++
	}
	assert.Equal(t, 5, n)
}

func TestCLI_ResolveAlphabet(t *testing.T) {
	cli := newCLIRunner(t, "http://unused")

	output, err := cli.run("alphabet", "upper,numeric")
	require.NoError(t, err, "output: %s", output)

	var resp alphabetResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", resp.Alphabet)
	assert.Equal(t, 36, resp.Size)
}

func TestCLI_TokenLifecycle(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Issue with --save so the value lands in the token file
	output, err := cli.run("token", "issue", "--purpose", "ci-deploy", "--ttl", "3600", "--save")
	require.NoError(t, err, "output: %s", output)

	var issued tokenResponse
	require.NoError(t, json.Unmarshal([]byte(output), &issued))
	assert.NotEmpty(t, issued.ID)
	assert.NotEmpty(t, issued.Value)
	assert.Equal(t, "ci-deploy", issued.Purpose)

	saved, err := os.ReadFile(cli.tokenFile)
	require.NoError(t, err)
	assert.Equal(t, issued.Value, string(saved))

	// Get returns metadata without the value
	output, err = cli.run("token", "get", issued.ID)
	require.NoError(t, err, "output: %s", output)

	var got tokenResponse
	require.NoError(t, json.Unmarshal([]byte(output), &got))
	assert.Equal(t, issued.ID, got.ID)
	assert.Empty(t, got.Value)

	// Revoke, then lookups fail
	_, err = cli.run("token", "revoke", issued.ID)
	require.NoError(t, err)

	output, err = cli.run("token", "get", issued.ID)
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Missing required purpose
	output, err := cli.run("token", "issue")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "purpose")

	// Invalid flags fail locally before any generation happens
	output, err = cli.run("string", "--flags", "klingon")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "alphabet")

	// Full int64 span cannot be sampled
	output, err = cli.run("int", "--min", "-9223372036854775808", "--max", "9223372036854775807")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "range")
}
