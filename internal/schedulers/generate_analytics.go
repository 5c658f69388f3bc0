package schedulers

import (
	"os-scheduler/internal/core"
	"os-scheduler/internal/render"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/util"
)

// GenerateResponse turns a simulation outcome into the API representation,
// adding averages, CPU utilization and throughput.
func GenerateResponse(algorithm Algorithm, outcome core.Outcome) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, len(outcome.Results))
	for _, result := range outcome.Results {
		proccessDetails = append(proccessDetails, generateProcessDetails(result))
	}
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	metric := outcome.Metric
	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		throughput = float64(len(outcome.Results)) / float64(metric.TotalTime)
	}

	gantt := make([]responses.IntervalResponse, 0, len(outcome.Gantt))
	for _, interval := range outcome.Gantt {
		gantt = append(gantt, responses.IntervalResponse{
			ProcessId: interval.Process.ID,
			Name:      interval.Process.Name,
			StartTime: interval.StartTime,
			EndTime:   interval.EndTime,
		})
	}

	return responses.ScheduleResponse{
		Algorithm:             string(algorithm),
		TotalTime:             float64(metric.TotalTime),
		IdleTime:              float64(metric.IdleTime),
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Details:               proccessDetails,
		Gantt:                 gantt,
		Legend:                render.Legend(outcome.Gantt),
	}
}

func generateProcessDetails(result core.Result) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      result.Process.ID,
		Name:           result.Process.Name,
		ArrivalTime:    result.Process.ArrivalTime,
		BurstTime:      result.Process.BurstTime,
		Priority:       result.Process.Priority,
		StartTime:      result.StartTime,
		CompletionTime: result.EndTime,
		ResponseTime:   float64(result.ResponseTime),
		TurnAroundTime: float64(result.TurnaroundTime),
		WaitingTime:    float64(result.WaitingTime),
	}
}
