// Hammers the summaries endpoint with generated punch logs to check that the
// recompute-per-request pipeline holds up under a polling client population.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

func punchLog(employee string) string {
	today := time.Now().Format("02-01-2006")
	return fmt.Sprintf(
		"%s IN %s 09:00:00\n%s OUT %s 12:30:00\n%s IN %s 13:15:00\n",
		employee, today, employee, today, employee, today)
}

func main() {
	url := "http://localhost:8080/api/v1/summaries"
	contentType := "application/json"

	numClients := 2000
	requestsPerClient := 5
	concurrency := 50 // limit in-flight requests to avoid local port exhaustion

	fmt.Printf("Starting load test: %d clients (%d requests each) to %s with concurrency %d\n",
		numClients, requestsPerClient, url, concurrency)

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)

	var successCount int64
	var failCount int64

	startTime := time.Now()

	for i := 0; i < numClients; i++ {
		wg.Add(1)
		sem <- struct{}{}

		employee := fmt.Sprintf("Load Tester %d", i)

		go func(employee string) {
			defer wg.Done()
			defer func() { <-sem }()

			payload, _ := json.Marshal(map[string]string{"rawText": punchLog(employee)})

			for j := 0; j < requestsPerClient; j++ {
				resp, err := http.Post(url, contentType, bytes.NewBuffer(payload))
				if err != nil {
					atomic.AddInt64(&failCount, 1)
					continue
				}

				if resp.StatusCode >= 200 && resp.StatusCode < 300 {
					atomic.AddInt64(&successCount, 1)
				} else {
					atomic.AddInt64(&failCount, 1)
				}
				resp.Body.Close()
			}
		}(employee)
	}

	wg.Wait()
	elapsed := time.Since(startTime)

	total := successCount + failCount
	fmt.Printf("Done in %s: %d requests, %d ok, %d failed (%.0f req/s)\n",
		elapsed, total, successCount, failCount, float64(total)/elapsed.Seconds())
}
