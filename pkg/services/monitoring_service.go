package services

import (
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLog is a single recorded API request.
type RequestLog struct {
	Timestamp    time.Time     `json:"timestamp"`
	Path         string        `json:"path"`
	Method       string        `json:"method"`
	StatusCode   int           `json:"status_code"`
	ResponseTime time.Duration `json:"response_time"`
}

// MonitoringService records requests in memory and aggregates them for the
// monitoring panel. State resets with the process, like everything else in
// this service.
type MonitoringService struct {
	mu   sync.RWMutex
	logs []RequestLog
}

// NewMonitoringService creates an empty monitoring service.
func NewMonitoringService() *MonitoringService {
	return &MonitoringService{logs: make([]RequestLog, 0)}
}

// Record appends one request log.
func (s *MonitoringService) Record(entry RequestLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, entry)
}

// Middleware returns a Gin middleware recording every request except the
// admin and monitoring endpoints themselves.
func (s *MonitoringService) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/v1/admin") || strings.HasPrefix(path, "/api/v1/monitoring") {
			return
		}

		s.Record(RequestLog{
			Timestamp:    start,
			Path:         path,
			Method:       c.Request.Method,
			StatusCode:   c.Writer.Status(),
			ResponseTime: time.Since(start),
		})
	}
}

// DashboardData is the aggregated view served to the monitoring panel.
type DashboardData struct {
	RequestsOverTime []map[string]interface{} `json:"requestsOverTime"`
	Endpoints        map[string]int           `json:"endpoints"`
	StatusCodes      []map[string]interface{} `json:"statusCodes"`
	AvgResponseTimes []map[string]interface{} `json:"avgResponseTimes"`
	RecentErrors     []RequestLog             `json:"recentErrors"`
}

// Dashboard aggregates the logs of the last periodHours hours. Hour buckets
// are labeled in IST, the product's home timezone.
func (s *MonitoringService) Dashboard(periodHours int) DashboardData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		ist = time.UTC
	}

	now := time.Now().In(ist)
	since := now.Add(-time.Duration(periodHours) * time.Hour)

	recent := make([]RequestLog, 0)
	for _, entry := range s.logs {
		if entry.Timestamp.After(since) {
			recent = append(recent, entry)
		}
	}

	// Hourly request counts, oldest bucket first.
	counts := make(map[string]int)
	for _, entry := range recent {
		counts[entry.Timestamp.In(ist).Truncate(time.Hour).Format(time.RFC3339)]++
	}
	overTime := make([]map[string]interface{}, periodHours)
	for i := 0; i < periodHours; i++ {
		bucketTime := now.Add(-time.Duration(periodHours-1-i) * time.Hour)
		key := bucketTime.Truncate(time.Hour).Format(time.RFC3339)
		overTime[i] = map[string]interface{}{
			"time":     bucketTime.Format("15:00"),
			"requests": counts[key],
		}
	}

	endpoints := make(map[string]int)
	for _, entry := range recent {
		endpoints[entry.Path]++
	}

	classes := map[string]int{
		"2xx Success":      0,
		"4xx Client Error": 0,
		"5xx Server Error": 0,
	}
	for _, entry := range recent {
		switch {
		case entry.StatusCode >= 200 && entry.StatusCode < 300:
			classes["2xx Success"]++
		case entry.StatusCode >= 400 && entry.StatusCode < 500:
			classes["4xx Client Error"]++
		case entry.StatusCode >= 500:
			classes["5xx Server Error"]++
		}
	}
	statusCodes := make([]map[string]interface{}, 0, len(classes))
	for name, value := range classes {
		statusCodes = append(statusCodes, map[string]interface{}{"name": name, "value": value})
	}

	totals := make(map[string]time.Duration)
	perPath := make(map[string]int)
	for _, entry := range recent {
		totals[entry.Path] += entry.ResponseTime
		perPath[entry.Path]++
	}
	avgTimes := make([]map[string]interface{}, 0, len(totals))
	for path, total := range totals {
		avgTimes = append(avgTimes, map[string]interface{}{
			"endpoint":     path,
			"responseTime": total.Milliseconds() / int64(perPath[path]),
		})
	}

	errors := make([]RequestLog, 0)
	for i := len(recent) - 1; i >= 0 && len(errors) < 10; i-- {
		if recent[i].StatusCode >= 500 {
			errors = append(errors, recent[i])
		}
	}

	return DashboardData{
		RequestsOverTime: overTime,
		Endpoints:        endpoints,
		StatusCodes:      statusCodes,
		AvgResponseTimes: avgTimes,
		RecentErrors:     errors,
	}
}
