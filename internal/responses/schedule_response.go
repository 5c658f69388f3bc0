package responses

type ProcessResponse struct {
	ProcessId      string  `json:"process_id"`
	Name           string  `json:"name"`
	ArrivalTime    int     `json:"arrival_time"`
	BurstTime      int     `json:"burst_time"`
	Priority       *int    `json:"priority,omitempty"`
	StartTime      int     `json:"start_time"`
	CompletionTime int     `json:"completion_time"`
	ResponseTime   float64 `json:"response_time"`
	TurnAroundTime float64 `json:"turn_around_time"`
	WaitingTime    float64 `json:"waiting_time"`
}
type IntervalResponse struct {
	ProcessId string `json:"process_id"`
	Name      string `json:"name"`
	StartTime int    `json:"start_time"`
	EndTime   int    `json:"end_time"`
}
type LegendEntry struct {
	ProcessId string `json:"process_id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
}
type ScheduleResponse struct {
	Algorithm             string             `json:"algorithm"`
	TotalTime             float64            `json:"total_time"`
	IdleTime              float64            `json:"idle_time"`
	AverageWaitingTime    float64            `json:"average_waiting_time"`
	AverageResponseTime   float64            `json:"average_response_time"`
	AverageTurnAroundTime float64            `json:"average_turn_around_time"`
	CpuUtilization        float64            `json:"cpu_utilization"`
	CpuThroughput         float64            `json:"cpu_throughput"`
	Details               []ProcessResponse  `json:"details"`
	Gantt                 []IntervalResponse `json:"gantt"`
	Legend                []LegendEntry      `json:"legend"`
}
