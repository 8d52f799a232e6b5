package handlers

import (
	"net/http"
	"time"

	"github.com/renefm/user-hub-be/internal/services"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// SystemHandler serves process and store health information.
type SystemHandler struct {
	service services.UserServiceProvider
	started time.Time
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(service services.UserServiceProvider) *SystemHandler {
	return &SystemHandler{service: service, started: time.Now()}
}

// SystemStats is the body of the stats endpoint.
type SystemStats struct {
	UserCount     int64   `json:"userCount"`
	UptimeSeconds int64   `json:"uptimeSeconds"`
	CPUPercent    float64 `json:"cpuPercent"`
	MemUsedMB     uint64  `json:"memUsedMb"`
	MemTotalMB    uint64  `json:"memTotalMb"`
	HostUptime    uint64  `json:"hostUptimeSeconds"`
}

// GetStats handles GET /system/stats.
func (h *SystemHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats := SystemStats{
		UserCount:     h.service.CountUsers(),
		UptimeSeconds: int64(time.Since(h.started).Seconds()),
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		stats.CPUPercent = percents[0]
	} else if err != nil {
		log.Warn().Err(err).Msg("Failed to read CPU usage")
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemUsedMB = vm.Used / 1024 / 1024
		stats.MemTotalMB = vm.Total / 1024 / 1024
	} else {
		log.Warn().Err(err).Msg("Failed to read memory usage")
	}

	if uptime, err := host.Uptime(); err == nil {
		stats.HostUptime = uptime
	}

	respondJSON(w, http.StatusOK, stats)
}
