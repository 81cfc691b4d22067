package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-api/pkg/apiErrors"
)

const (
	CronJobTypeSalesReconcile     = "sales-reconcile"
	CronJobTypeSubscriptionExpiry = "subscription-expiry"
	CronJobTypeAll                = "all"
)

// CronJob é um agendador que pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices indexa os agendadores pelo tipo aceito na rota
type CronJobServices map[string]CronJob

// RunCronJob executa manualmente uma cron job específica, ou todas com o tipo "all"
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := pathParam(r, "type")

		if cronType == CronJobTypeAll {
			for name, job := range services {
				logrus.WithField("job", name).Info("Disparando cron job manualmente")
				job.TriggerManualSync()
			}
		} else {
			job, ok := services[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
					"Tipo de cron job inválido. Valores aceitos: "+strings.Join(services.types(), ", "), nil)
				return
			}
			logrus.WithField("job", cronType).Info("Disparando cron job manualmente")
			job.TriggerManualSync()
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			status[name] = job.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s)+1)
	for name := range s {
		types = append(types, name)
	}
	sort.Strings(types)
	return append(types, CronJobTypeAll)
}
