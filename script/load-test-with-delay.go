package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Scenario is one money movement the load test can fire
type Scenario struct {
	Name   string
	Path   string
	Amount string
	// Holdings is the change of balance + escrowed + invested when the call succeeds
	Holdings int
}

// WalletResponse is the subset of the wallet payload the test reads
type WalletResponse struct {
	UserID         string          `json:"user_id"`
	Balance        decimal.Decimal `json:"balance"`
	EscrowedAmount decimal.Decimal `json:"escrowed_amount"`
	TotalInvested  decimal.Decimal `json:"total_invested"`
}

// Holdings is the conserved sum of the movable buckets
func (w WalletResponse) Holdings() decimal.Decimal {
	return w.Balance.Add(w.EscrowedAmount).Add(w.TotalInvested)
}

// TestResult contains metrics for a single request
type TestResult struct {
	UserID       string
	Scenario     Scenario
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// Success reports a 2xx response
func (r TestResult) Success() bool {
	return r.Error == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests int
	Successful    int
	Rejected      int // 4xx responses, mostly insufficient funds
	Failed        int
	TotalTime     time.Duration
	ResponseTimes []time.Duration
	StatusCounts  map[int]int
	ErrorCounts   map[string]int
	ScenarioStats map[string]int
	// expected holdings delta per user from successful calls
	Expected map[string]decimal.Decimal
	Lock     sync.Mutex
}

func (s *TestStats) record(r TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.ResponseTimes = append(s.ResponseTimes, r.ResponseTime)
	s.ScenarioStats[r.Scenario.Name]++
	switch {
	case r.Error != nil:
		s.Failed++
		s.ErrorCounts[r.Error.Error()]++
		return
	case r.Success():
		s.Successful++
		delta := decimal.RequireFromString(r.Scenario.Amount).Mul(decimal.NewFromInt(int64(r.Scenario.Holdings)))
		s.Expected[r.UserID] = s.Expected[r.UserID].Add(delta)
	case r.StatusCode < 500:
		s.Rejected++
	default:
		s.Failed++
	}
	s.StatusCounts[r.StatusCode]++
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	userIDsStr := flag.String("u", "load-1,load-2,load-3", "Comma-separated list of user IDs to distribute load across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	token := flag.String("token", "", "Bearer token sent with every request (needs the super_admin role when users differ)")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	var userIDs []string
	for _, id := range strings.Split(*userIDsStr, ",") {
		if id = strings.TrimSpace(id); id != "" {
			userIDs = append(userIDs, id)
		}
	}
	if len(userIDs) == 0 {
		userIDs = []string{"load-1"}
	}

	scenarios := []Scenario{
		{"Deposit Small", "add-money", "100.00", 1},
		{"Deposit Large", "add-money", "2500.50", 1},
		{"Withdraw", "withdraw", "750.25", -1},
		{"Escrow", "escrow", "1000.00", 0},
		{"Release Escrow", "release-escrow", "400.00", 0},
		{"Escrow Withdrawal", "escrow-withdrawal", "150.00", -1},
	}

	client := &http.Client{Timeout: 10 * time.Second}

	// provision wallets up front so the conservation check has a baseline
	baseline := make(map[string]decimal.Decimal, len(userIDs))
	for _, id := range userIDs {
		w, err := fetchWallet(client, *baseURL, *token, id)
		if err != nil {
			fmt.Printf("Cannot read wallet %s: %v\n", id, err)
			return
		}
		baseline[id] = w.Holdings()
	}

	fmt.Printf("Load testing API across %d users: %v\n", len(userIDs), userIDs)
	fmt.Printf("Scenarios: %d\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		StatusCounts:  make(map[int]int),
		ErrorCounts:   make(map[string]int),
		ScenarioStats: make(map[string]int),
		Expected:      make(map[string]decimal.Decimal),
	}

	jobs := make(chan int, *totalRequests)
	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	startTime := time.Now()
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				if *delayMs > 0 {
					time.Sleep(time.Duration(*delayMs) * time.Millisecond)
				}
				userID := userIDs[rand.IntN(len(userIDs))]
				scenario := scenarios[rand.IntN(len(scenarios))]
				stats.record(fire(client, *baseURL, *token, userID, scenario))
			}
		}()
	}

	ticker := time.NewTicker(time.Second)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				stats.Lock.Lock()
				completed := len(stats.ResponseTimes)
				stats.Lock.Unlock()
				fmt.Printf("Progress: %d/%d requests completed\n", completed, *totalRequests)
			}
		}
	}()

	wg.Wait()
	close(done)
	ticker.Stop()
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
	checkConservation(client, *baseURL, *token, baseline, stats.Expected)
}

func fire(client *http.Client, baseURL, token, userID string, scenario Scenario) TestResult {
	result := TestResult{UserID: userID, Scenario: scenario}

	body, _ := json.Marshal(map[string]string{"amount": scenario.Amount})
	url := fmt.Sprintf("%s/wallets/%s/%s", baseURL, userID, scenario.Path)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		result.Error = err
		return result
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := client.Do(req)
	result.ResponseTime = time.Since(start)
	if err != nil {
		result.Error = err
		return result
	}
	resp.Body.Close()
	result.StatusCode = resp.StatusCode
	return result
}

func fetchWallet(client *http.Client, baseURL, token, userID string) (WalletResponse, error) {
	var w WalletResponse

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/wallets/%s", baseURL, userID), nil)
	if err != nil {
		return w, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		return w, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return w, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	err = json.NewDecoder(resp.Body).Decode(&w)
	return w, err
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	tps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)
	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful:          %d\n", stats.Successful)
	fmt.Printf("Rejected (4xx):      %d\n", stats.Rejected)
	fmt.Printf("Failed:              %d\n", stats.Failed)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f requests/second\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- STATUS CODES -----------------")
	for code, count := range stats.StatusCounts {
		fmt.Printf("%d: %d\n", code, count)
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for name, count := range stats.ScenarioStats {
		fmt.Printf("%-18s: %d requests\n", name, count)
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- TRANSPORT ERRORS -----------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}

// checkConservation compares each wallet's holdings with the baseline plus
// the deposits and withdrawals that were acknowledged
func checkConservation(client *http.Client, baseURL, token string, baseline, expected map[string]decimal.Decimal) {
	fmt.Println("\n================= CONSERVATION =================")
	ok := true
	for userID, start := range baseline {
		w, err := fetchWallet(client, baseURL, token, userID)
		if err != nil {
			fmt.Printf("%s: cannot read wallet: %v\n", userID, err)
			ok = false
			continue
		}
		want := start.Add(expected[userID])
		if !w.Holdings().Equal(want) {
			fmt.Printf("❌ %s: holdings %s, expected %s\n", userID, w.Holdings().StringFixed(2), want.StringFixed(2))
			ok = false
			continue
		}
		fmt.Printf("✅ %s: holdings %s\n", userID, w.Holdings().StringFixed(2))
	}
	if !ok {
		fmt.Println("Wallet holdings drifted from acknowledged movements")
	}
	fmt.Println("================================================")
}
