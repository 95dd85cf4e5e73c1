package suggestion_service

import (
	"fmt"
	"time"

	"github.com/agendazap/slot-suggester/internal/core/domain"
)

var weekdayNamesPtBR = map[time.Weekday]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
}

// formatSlot renders "DD/MM/YYYY <Weekday> às HH:MMh" in Brazilian
// Portuguese, extracting every field in the request timezone. It is a pure
// projection of the slot and never fails.
func formatSlot(slot domain.Slot, loc *time.Location) string {
	start := slot.Start.Date.In(loc)
	return fmt.Sprintf("%s %s às %sh",
		start.Format("02/01/2006"),
		weekdayNamesPtBR[start.Weekday()],
		start.Format("15:04"),
	)
}
