//go:build ignore

// Walks a running API through the points, assignment and check-in endpoints.
//
//	go run scripts/smoke-test.go -url http://localhost:8080 -user 42
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

var client = &http.Client{Timeout: 10 * time.Second}

func main() {
	apiURL := flag.String("url", "http://localhost:8080", "API base URL")
	userID := flag.Int64("user", 42, "user id to exercise")
	flag.Parse()

	steps := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"health", http.MethodGet, "/", nil},
		{"add 10", http.MethodPost, "/add_points", map[string]int64{"user_id": *userID, "points": 10}},
		{"add -5", http.MethodPost, "/add_points", map[string]int64{"user_id": *userID, "points": -5}},
		{"get", http.MethodGet, fmt.Sprintf("/get_points/%d", *userID), nil},
		{"set 0", http.MethodPost, "/set_points", map[string]int64{"user_id": *userID, "points": 0}},
		{"assign", http.MethodPost, "/mentor-assignments", map[string]int64{"mentor_id": 1, "mentee_id": *userID}},
		{"list", http.MethodGet, "/mentor-assignments", nil},
		{"unassign", http.MethodPost, "/mentor-assignments", map[string]int64{"mentor_id": 1, "mentee_id": *userID}},
		{"checkin", http.MethodPost, "/log-checkin", map[string]any{"user_id": *userID, "checkin_type": "GOOD"}},
	}

	failed := false
	for _, s := range steps {
		status, body, err := call(*apiURL, s.method, s.path, s.body)
		if err != nil {
			fmt.Printf("✗ %-8s %v\n", s.name, err)
			failed = true
			continue
		}
		mark := "✓"
		if status != http.StatusOK {
			mark = "✗"
			failed = true
		}
		fmt.Printf("%s %-8s %d %s\n", mark, s.name, status, bytes.TrimSpace(body))
	}

	if failed {
		os.Exit(1)
	}
}

func call(baseURL, method, path string, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, reqBody)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, body, err
}
