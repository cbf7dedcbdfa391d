package registry

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func decodeCallResult(t *testing.T, result any) (text string, isError bool) {
	t.Helper()
	resultMap, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("expected result map, got %T", result)
	}
	if v, ok := resultMap["isError"].(bool); ok {
		isError = v
	}
	content, ok := resultMap["content"].([]any)
	if !ok || len(content) != 1 {
		t.Fatalf("expected one content block, got %v", resultMap["content"])
	}
	block, ok := content[0].(map[string]any)
	if !ok {
		t.Fatalf("expected content object, got %T", content[0])
	}
	if block["type"] != "text" {
		t.Fatalf("expected text content, got %v", block["type"])
	}
	text, _ = block["text"].(string)
	return text, isError
}

func TestServeStream(t *testing.T) {
	reg := newTestRegistry(t)

	in := strings.NewReader(strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"factorial","arguments":{"n":5}}}`,
	}, "\n") + "\n")
	var out bytes.Buffer

	if err := serveStream(context.Background(), reg, in, &out); err != nil {
		t.Fatalf("serveStream failed: %v", err)
	}

	// The notification is silent, so exactly two responses come back.
	decoder := json.NewDecoder(&out)
	var responses []MCPResponse
	for decoder.More() {
		var resp MCPResponse
		if err := decoder.Decode(&resp); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		responses = append(responses, resp)
	}
	if len(responses) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(responses))
	}

	if responses[0].Error != nil {
		t.Errorf("initialize failed: %+v", responses[0].Error)
	}
	text, isError := decodeCallResult(t, responses[1].Result)
	if isError {
		t.Error("expected isError=false")
	}
	if text != "Result: 120" {
		t.Errorf("expected 'Result: 120', got %q", text)
	}
}

func TestServeStreamParseError(t *testing.T) {
	reg := newTestRegistry(t)

	in := strings.NewReader("{not json}\n")
	var out bytes.Buffer

	if err := serveStream(context.Background(), reg, in, &out); err != nil {
		t.Fatalf("serveStream failed: %v", err)
	}

	var resp MCPResponse
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != ErrCodeParseError {
		t.Errorf("expected parse error, got %+v", resp.Error)
	}
}

func TestServeStreamCancelled(t *testing.T) {
	reg := newTestRegistry(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n")
	var out bytes.Buffer

	if err := serveStream(ctx, reg, in, &out); err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestServeHTTP(t *testing.T) {
	reg := newTestRegistry(t)

	srv := httptest.NewServer(ServeHTTP(reg))
	defer srv.Close()

	body := bytes.NewBufferString(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	resp, err := http.Post(srv.URL, "application/json", body)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var mcpResp MCPResponse
	if err := json.NewDecoder(resp.Body).Decode(&mcpResp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if mcpResp.Error != nil {
		t.Fatalf("expected no error, got %v", mcpResp.Error)
	}
	resultMap, ok := mcpResp.Result.(map[string]any)
	if !ok {
		t.Fatalf("expected result map, got %T", mcpResp.Result)
	}
	tools, ok := resultMap["tools"].([]any)
	if !ok || len(tools) != 14 {
		t.Fatalf("expected 14 tools, got %v", resultMap["tools"])
	}
}

func TestServeHTTPToolCall(t *testing.T) {
	reg := newTestRegistry(t)

	srv := httptest.NewServer(ServeHTTP(reg))
	defer srv.Close()

	body := bytes.NewBufferString(`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"is_prime","arguments":{"n":17}}}`)
	resp, err := http.Post(srv.URL, "application/json", body)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var mcpResp MCPResponse
	if err := json.NewDecoder(resp.Body).Decode(&mcpResp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if mcpResp.Error != nil {
		t.Fatalf("expected no error, got %v", mcpResp.Error)
	}
	text, isError := decodeCallResult(t, mcpResp.Result)
	if isError {
		t.Error("expected isError=false")
	}
	if text != "17 is prime" {
		t.Errorf("expected '17 is prime', got %q", text)
	}
}

func TestServeHTTPDomainError(t *testing.T) {
	reg := newTestRegistry(t)

	srv := httptest.NewServer(ServeHTTP(reg))
	defer srv.Close()

	body := bytes.NewBufferString(`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"divide","arguments":{"a":10,"b":0}}}`)
	resp, err := http.Post(srv.URL, "application/json", body)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var mcpResp MCPResponse
	if err := json.NewDecoder(resp.Body).Decode(&mcpResp); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if mcpResp.Error != nil {
		t.Fatalf("expected in-band tool error, got protocol error %+v", mcpResp.Error)
	}
	text, isError := decodeCallResult(t, mcpResp.Result)
	if !isError {
		t.Error("expected isError=true")
	}
	if !strings.Contains(text, "division by zero") {
		t.Errorf("expected the named condition in %q", text)
	}
}

func TestServeHTTPMethodNotAllowed(t *testing.T) {
	reg := newTestRegistry(t)

	srv := httptest.NewServer(ServeHTTP(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", resp.StatusCode)
	}
}

func TestServeHTTPInvalidJSON(t *testing.T) {
	reg := newTestRegistry(t)

	srv := httptest.NewServer(ServeHTTP(reg))
	defer srv.Close()

	body := bytes.NewBufferString(`{invalid json`)
	resp, err := http.Post(srv.URL, "application/json", body)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var mcpResp MCPResponse
	_ = json.NewDecoder(resp.Body).Decode(&mcpResp)
	if mcpResp.Error == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if mcpResp.Error.Code != ErrCodeParseError {
		t.Errorf("expected ErrCodeParseError, got %d", mcpResp.Error.Code)
	}
}

func TestServeHTTPNotification(t *testing.T) {
	reg := newTestRegistry(t)

	srv := httptest.NewServer(ServeHTTP(reg))
	defer srv.Close()

	body := bytes.NewBufferString(`{"jsonrpc":"2.0","method":"notifications/initialized"}`)
	resp, err := http.Post(srv.URL, "application/json", body)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusAccepted {
		t.Errorf("expected 202 for notification, got %d", resp.StatusCode)
	}
}

func TestServeSSE(t *testing.T) {
	reg := newTestRegistry(t)

	srv := httptest.NewServer(ServeSSE(reg))
	defer srv.Close()

	reqBody := bytes.NewBufferString(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	resp, err := http.Post(srv.URL, "application/json", reqBody)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	scanner := bufio.NewScanner(resp.Body)
	var dataLine string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "data: ") {
			dataLine = strings.TrimPrefix(line, "data: ")
			break
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scanner failed: %v", err)
	}
	if dataLine == "" {
		t.Fatal("expected SSE data line")
	}

	var mcpResp MCPResponse
	if err := json.Unmarshal([]byte(dataLine), &mcpResp); err != nil {
		t.Fatalf("unmarshal SSE data failed: %v", err)
	}
	if mcpResp.Error != nil {
		t.Fatalf("expected no error, got %v", mcpResp.Error)
	}
	resultMap, ok := mcpResp.Result.(map[string]any)
	if !ok {
		t.Fatalf("expected result map, got %T", mcpResp.Result)
	}
	tools, ok := resultMap["tools"].([]any)
	if !ok || len(tools) == 0 {
		t.Fatal("expected at least one tool")
	}
}

func TestHealthHandler(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	srv := httptest.NewServer(HealthHandler(reg))
	defer srv.Close()

	// Before Start the endpoint reports unavailable.
	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("expected 503 before Start, got %d", resp.StatusCode)
	}
	_ = resp.Body.Close()

	if err := reg.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer func() {
		_ = reg.Stop()
	}()

	resp, err = http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 after Start, got %d", resp.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if payload["status"] != "healthy" {
		t.Errorf("expected status 'healthy', got %v", payload["status"])
	}
	if payload["server"] != "test-server" {
		t.Errorf("expected server 'test-server', got %v", payload["server"])
	}
	if _, ok := payload["uptime_seconds"]; !ok {
		t.Error("expected uptime_seconds field")
	}
	if _, ok := payload["timestamp"]; !ok {
		t.Error("expected timestamp field")
	}
}

func TestHealthHandlerMethodNotAllowed(t *testing.T) {
	reg := newTestRegistry(t)

	srv := httptest.NewServer(HealthHandler(reg))
	defer srv.Close()

	resp, err := http.Post(srv.URL, "application/json", bytes.NewBufferString("{}"))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", resp.StatusCode)
	}
}
