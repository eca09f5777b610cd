package model

type AppointmentStatus string

const (
	AppointmentStatusAvailable  AppointmentStatus = "AV"
	AppointmentStatusActive     AppointmentStatus = "AC"
	AppointmentStatusPending    AppointmentStatus = "PA"
	AppointmentStatusWaitlisted AppointmentStatus = "WL"
)

// AppointmentStatuses lists the status domain in prompt order.
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusAvailable,
	AppointmentStatusActive,
	AppointmentStatusPending,
	AppointmentStatusWaitlisted,
}

// AppointmentForm holds the raw Add Appointment input. The date is entered
// as month, day and year and stored as "month/day/year"; the slot is stored
// as "start-end".
type AppointmentForm struct {
	ID        string
	Month     string
	Day       string
	Year      string
	StartTime string
	EndTime   string
	Status    string
}

const insertAppointmentSQL = `insert into Appointment (appnt_ID, adate, time_slot, status) values ($1, $2, $3, $4)`

func (f AppointmentForm) Date() string {
	return f.Month + "/" + f.Day + "/" + f.Year
}

func (f AppointmentForm) TimeSlot() string {
	return f.StartTime + "-" + f.EndTime
}

func (f AppointmentForm) Insert() Statement {
	return NewStatement(insertAppointmentSQL, f.ID, f.Date(), f.TimeSlot(), f.Status)
}

// BookingForm is the Make Appointment input: a doctor's available
// appointment plus the patient taking it.
type BookingForm struct {
	DoctorID      string
	AppointmentID string
	Patient       PatientForm
}

const availableAppointmentSQL = `select A.appnt_ID from Doctor D, Appointment A, has_appointment H where D.doctor_ID = $1 and D.doctor_ID = H.doctor_id and H.appt_id = $2 and A.appnt_ID = H.appt_id and A.status = '` + string(AppointmentStatusAvailable) + `'`

// Guard selects the appointment only if it belongs to the doctor and is
// still available.
func (f BookingForm) Guard() Statement {
	return NewStatement(availableAppointmentSQL, f.DoctorID, f.AppointmentID)
}

func (f BookingForm) Insert() Statement {
	return f.Patient.Insert()
}
