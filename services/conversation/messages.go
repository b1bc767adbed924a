package conversation

import (
	"fmt"
	"strings"

	"citabot/models"
)

// Outbound message templates. Fixed Spanish locale, matching the transport
// the bot is deployed on.

func msgIdleHint(greeting string) string {
	return fmt.Sprintf("Hola 👋 Escribe \"%s\" para agendar una cita.", greeting)
}

func msgDayList(days []models.AvailableDay) string {
	var b strings.Builder
	b.WriteString("¡Hola! Estos son los días disponibles para tu cita:\n")
	for i, d := range days {
		fmt.Fprintf(&b, "%d. %s\n", i+1, d.Label)
	}
	b.WriteString("Responde con el número del día que prefieras.")
	return b.String()
}

func msgInvalidDay(max int) string {
	return fmt.Sprintf("Opción no válida. Responde con un número entre 1 y %d.", max)
}

func msgSlotList(day models.AvailableDay, slots []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Horarios disponibles para %s:\n", day.Label)
	for i, s := range slots {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	b.WriteString("Responde con el número del horario que prefieras.")
	return b.String()
}

func msgNoAvailability(day models.AvailableDay, greeting string) string {
	return fmt.Sprintf("Lo sentimos, no quedan horarios disponibles para %s. Escribe \"%s\" para elegir otro día.", day.Label, greeting)
}

func msgInvalidSlot(greeting string) string {
	return fmt.Sprintf("Opción no válida. Escribe \"%s\" para comenzar de nuevo.", greeting)
}

func msgConfirmation(appt *models.Appointment, dayLabel string) string {
	return fmt.Sprintf("✅ ¡Cita confirmada! Te esperamos el %s a las %s.\nCódigo de reserva: %s", dayLabel, appt.SlotLabel, appt.Reference)
}

func msgSlotTaken(greeting string) string {
	return fmt.Sprintf("Ese horario acaba de ser tomado por otra persona. Escribe \"%s\" para elegir de nuevo.", greeting)
}

func msgStoreFailure(greeting string) string {
	return fmt.Sprintf("Tuvimos un problema procesando tu reserva. Por favor escribe \"%s\" e intenta de nuevo.", greeting)
}
