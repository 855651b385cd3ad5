package appointment

import "fmt"

const (
	MsgSlotTaken        = "The slot is already booked."
	MsgNothingToCancel  = "No matching appointment found to cancel."
	MsgSlotUnavailable  = "Sorry, that slot is already booked."
	MsgNewSlotTaken     = "Sorry, the new slot is already booked."
	MsgCannotReschedule = "Couldn't cancel the existing appointment. Please check your details."
	MsgNotUnderstood    = "I'm sorry, I didn't understand your request. Can you please rephrase?"
)

func bookedMessage(name, date, time string) string {
	return fmt.Sprintf("Appointment booked for %s on %s at %s.", name, date, time)
}

func cancelledMessage(name, date, time string) string {
	return fmt.Sprintf("Appointment cancelled for %s on %s at %s.", name, date, time)
}

func rescheduledMessage(bookMsg string) string {
	return "Old appointment cancelled. " + bookMsg
}
