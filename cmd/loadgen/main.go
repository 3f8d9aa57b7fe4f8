package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"sort"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

type planResp struct {
	Found    int  `json:"found"`
	CacheHit bool `json:"cache_hit"`
}

type cacheStats struct {
	Gets      int `json:"gets"`
	Hits      int `json:"hits"`
	Puts      int `json:"puts"`
	Evictions int `json:"evictions"`
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: loadgen <server_addr> [clients]")
	}
	server := os.Args[1]
	clients := 4
	if len(os.Args) > 2 {
		fmt.Sscanf(os.Args[2], "%d", &clients)
	}
	duration := 30 * time.Second

	client := &http.Client{Timeout: 10 * time.Second}

	cities, err := loadCities(client, server)
	if err != nil {
		log.Fatal(err)
	}
	if len(cities) < 2 {
		log.Fatalf("need at least 2 cities, server has %d", len(cities))
	}
	log.Infof("Loaded %d cities", len(cities))

	// clear cache before test to avoid cumulative stats
	resp, err := client.Post(server+"/debug/clear_cache", "text/plain", nil)
	if err != nil {
		log.Fatalf("failed to clear cache: %v", err)
	}
	resp.Body.Close()

	log.Infof("Running loadgen with %d clients for %s", clients, duration)

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		latencies []time.Duration
		totalErr  int
		totalHit  int
	)

	for w := 0; w < clients; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(seed))
			for ctx.Err() == nil {
				q := url.Values{}
				q.Set("from", cities[rnd.Intn(len(cities))])
				q.Set("to", cities[rnd.Intn(len(cities))])
				q.Set("by", []string{"T", "C"}[rnd.Intn(2)])

				start := time.Now()
				resp, err := client.Get(server + "/plan?" + q.Encode())
				lat := time.Since(start)

				var pr planResp
				if err == nil {
					err = json.NewDecoder(resp.Body).Decode(&pr)
					resp.Body.Close()
				}

				mu.Lock()
				latencies = append(latencies, lat)
				if err != nil {
					totalErr++
				} else if pr.CacheHit {
					totalHit++
				}
				mu.Unlock()
			}
		}(time.Now().UnixNano() + int64(w))
	}
	wg.Wait()

	stats := cacheStats{}
	if resp, err := client.Get(server + "/debug/cache_stats"); err == nil {
		json.NewDecoder(resp.Body).Decode(&stats)
		resp.Body.Close()
	}

	total := len(latencies)
	fmt.Println("\n========== LOADGEN SUMMARY ==========")
	fmt.Printf("Total Requests: %d\n", total)
	fmt.Printf("Errors: %d\n", totalErr)
	if total == 0 {
		return
	}
	fmt.Printf("Plan Cache Hit Rate: %.1f%% (gets=%d, hits=%d, puts=%d, evictions=%d)\n",
		float64(totalHit)/float64(total)*100, stats.Gets, stats.Hits, stats.Puts, stats.Evictions)

	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
	var sum time.Duration
	for _, l := range latencies {
		sum += l
	}
	pct := func(p float64) time.Duration {
		i := int(float64(total) * p)
		if i >= total {
			i = total - 1
		}
		return latencies[i]
	}
	fmt.Printf("Throughput: %.2f req/s\n", float64(total)/duration.Seconds())
	fmt.Printf("Avg Latency: %v\n", sum/time.Duration(total))
	fmt.Printf("P50: %v  P95: %v  P99: %v\n", pct(0.50), pct(0.95), pct(0.99))
	fmt.Printf("Fastest: %v\n", latencies[0])
	fmt.Printf("Slowest: %v\n", latencies[total-1])
	fmt.Println("=====================================")
}

func loadCities(client *http.Client, server string) ([]string, error) {
	resp, err := client.Get(server + "/network/cities")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body struct {
		Cities []string `json:"cities"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Cities, nil
}
