package model

const (
	doctorAppointmentsSQL = `select A.adate, A.appnt_ID from Appointment A, has_appointment H where H.doctor_id = $1 and H.appt_id = A.appnt_ID and (A.status = '` + string(AppointmentStatusActive) + `' or A.status = '` + string(AppointmentStatusAvailable) + `') and A.adate > $2 and A.adate < $3 group by A.appnt_ID`

	departmentAvailableSQL = `select A.appnt_ID from Appointment A, request_maintenance R, has_appointment H where R.dept_name = $1 and R.did = H.doctor_id and H.appt_id = A.appnt_ID and A.status = '` + string(AppointmentStatusAvailable) + `' and A.adate = $2 group by A.appnt_ID`

	statusCountsPerDoctorSQL = `select D.name, A.status, count(*) from Doctor D, Appointment A, has_appointment H where D.doctor_ID = H.doctor_id and H.appt_id = A.appnt_ID group by D.name, A.status order by count(*) desc`

	doctorCountWithStatusSQL = `select D.name, count(A.status) from Appointment A, Doctor D, has_appointment H where A.appnt_ID = H.appt_id and H.doctor_id = D.doctor_ID and A.status = $1 group by D.name`
)

// DoctorAppointmentsFilter selects a doctor's active and available
// appointments strictly between two month/day/year dates.
type DoctorAppointmentsFilter struct {
	DoctorID string
	After    string
	Before   string
}

func (f DoctorAppointmentsFilter) Query() Statement {
	return NewStatement(doctorAppointmentsSQL, f.DoctorID, f.After, f.Before)
}

// DepartmentAvailabilityFilter selects available appointments on one date
// for doctors linked to a department.
type DepartmentAvailabilityFilter struct {
	Department string
	Date       string
}

func (f DepartmentAvailabilityFilter) Query() Statement {
	return NewStatement(departmentAvailableSQL, f.Department, f.Date)
}

// StatusCountsPerDoctor counts appointments per doctor and status, largest
// count first.
func StatusCountsPerDoctor() Statement {
	return NewStatement(statusCountsPerDoctorSQL)
}

type StatusFilter struct {
	Status string
}

func (f StatusFilter) Query() Statement {
	return NewStatement(doctorCountWithStatusSQL, f.Status)
}
