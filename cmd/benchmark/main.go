package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Config holds the benchmark settings
var (
	targetURL   string
	concurrency int
	duration    time.Duration
	workload    string
)

// Metrics
var (
	totalRequests uint64
	success200    uint64 // Reads / updates / deletes
	success201    uint64 // Created
	fail404       uint64 // Not found
	failOther     uint64
)

func init() {
	flag.StringVar(&targetURL, "url", "http://localhost:8080", "API Base URL")
	flag.IntVar(&concurrency, "workers", 10, "Number of concurrent workers")
	flag.DurationVar(&duration, "duration", 30*time.Second, "Test duration")
	flag.StringVar(&workload, "workload", "mixed", "Workload type: reads | writes | mixed")
}

func main() {
	flag.Parse()
	log.Printf("Starting Benchmark: %s | Workers: %d | Duration: %s", workload, concurrency, duration)

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(concurrency)

	for i := 0; i < concurrency; i++ {
		go worker(&wg, start)
	}

	wg.Wait()
	printResults(time.Since(start))
}

func worker(wg *sync.WaitGroup, start time.Time) {
	defer wg.Done()
	client := &http.Client{Timeout: 5 * time.Second}

	for time.Since(start) < duration {
		var req *http.Request
		switch pickOperation() {
		case "create_client":
			payload := map[string]interface{}{"username": fmt.Sprintf("bench_%d", time.Now().UnixNano())}
			body, _ := json.Marshal(payload)
			req, _ = http.NewRequest("POST", targetURL+"/clients", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
		case "create_account":
			payload := map[string]interface{}{"amount_in_cents": int64(100)}
			body, _ := json.Marshal(payload)
			req, _ = http.NewRequest("POST", fmt.Sprintf("%s/clients/%d/accounts", targetURL, randomClientID()), bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
		case "update_account":
			payload := map[string]interface{}{"amount_in_cents": rand.Int63n(1000000)}
			body, _ := json.Marshal(payload)
			req, _ = http.NewRequest("PUT", fmt.Sprintf("%s/clients/%d/accounts/%d", targetURL, randomClientID(), rand.Int63n(600)+1), bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
		case "list_accounts":
			req, _ = http.NewRequest("GET", fmt.Sprintf("%s/clients/%d/accounts", targetURL, randomClientID()), nil)
		default:
			req, _ = http.NewRequest("GET", fmt.Sprintf("%s/clients/%d", targetURL, randomClientID()), nil)
		}

		resp, err := client.Do(req)
		if err != nil {
			atomic.AddUint64(&failOther, 1)
			continue
		}

		atomic.AddUint64(&totalRequests, 1)
		switch resp.StatusCode {
		case 201:
			atomic.AddUint64(&success201, 1)
		case 200:
			atomic.AddUint64(&success200, 1)
		case 404:
			atomic.AddUint64(&fail404, 1)
		default:
			atomic.AddUint64(&failOther, 1)
		}
		resp.Body.Close()
	}
}

func pickOperation() string {
	switch workload {
	case "reads":
		if rand.Float32() < 0.5 {
			return "get_client"
		}
		return "list_accounts"
	case "writes":
		switch rand.Intn(3) {
		case 0:
			return "create_client"
		case 1:
			return "create_account"
		default:
			return "update_account"
		}
	default:
		// Mixed: mostly reads with some writes, the usual CRUD shape.
		if rand.Float32() < 0.8 {
			if rand.Float32() < 0.5 {
				return "get_client"
			}
			return "list_accounts"
		}
		return "create_account"
	}
}

func randomClientID() int64 {
	// Assumes 200 clients seeded (IDs 1-200)
	return rand.Int63n(200) + 1
}

func printResults(d time.Duration) {
	total := atomic.LoadUint64(&totalRequests)
	s201 := atomic.LoadUint64(&success201)
	s200 := atomic.LoadUint64(&success200)
	f404 := atomic.LoadUint64(&fail404)
	fErr := atomic.LoadUint64(&failOther)

	tps := float64(total) / d.Seconds()

	results := map[string]interface{}{
		"workload":        workload,
		"duration_sec":    d.Seconds(),
		"total_requests":  total,
		"throughput_tps":  tps,
		"success_created": s201,
		"success_ok":      s200,
		"not_found":       f404,
		"errors":          fErr,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(results)

	// Also save to file
	filename := fmt.Sprintf("results_%s.json", workload)
	file, _ := os.Create(filename)
	defer file.Close()
	json.NewEncoder(file).Encode(results)
}
