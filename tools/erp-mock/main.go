// A stand-in for the ERP attendance API, for local development. Serves a
// plausible set of Employee Checkin records: two closed sessions yesterday
// and an open one started this morning.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

type checkinRecord struct {
	Name         string `json:"name"`
	Employee     string `json:"employee"`
	EmployeeName string `json:"employee_name"`
	LogType      string `json:"log_type"`
	Time         string `json:"time"`
}

func stamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}

func checkinsHandler(w http.ResponseWriter, r *http.Request) {
	employee := "HR-EMP-00042"
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	yesterday := today.AddDate(0, 0, -1)

	records := []checkinRecord{
		{Name: "EMP-CKIN-0001", Employee: employee, EmployeeName: "Jane Doe", LogType: "IN", Time: stamp(yesterday.Add(9 * time.Hour))},
		{Name: "EMP-CKIN-0002", Employee: employee, EmployeeName: "Jane Doe", LogType: "OUT", Time: stamp(yesterday.Add(13 * time.Hour))},
		{Name: "EMP-CKIN-0003", Employee: employee, EmployeeName: "Jane Doe", LogType: "IN", Time: stamp(yesterday.Add(14 * time.Hour))},
		{Name: "EMP-CKIN-0004", Employee: employee, EmployeeName: "Jane Doe", LogType: "OUT", Time: stamp(yesterday.Add(18*time.Hour + 30*time.Minute))},
		{Name: "EMP-CKIN-0005", Employee: employee, EmployeeName: "Jane Doe", LogType: "IN", Time: stamp(today.Add(9*time.Hour + 15*time.Minute))},
	}

	log.Printf("Serving %d checkin records (filters=%s)", len(records), r.URL.Query().Get("filters"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"data": records})
}

func main() {
	http.HandleFunc("/api/resource/Employee Checkin", checkinsHandler)
	log.Println("ERP mock server starting on port 8081...")
	log.Fatal(http.ListenAndServe(":8081", nil))
}
