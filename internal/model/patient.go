package model

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

type PatientForm struct {
	ID               string
	Name             string
	Gender           string
	Age              string
	Address          string
	AppointmentCount string
}

const insertPatientSQL = `insert into Patient (patient_ID, name, gtype, age, address, number_of_appts) values ($1, $2, $3, $4, $5, $6)`

func (f PatientForm) Insert() Statement {
	return NewStatement(insertPatientSQL,
		f.ID,
		f.Name,
		f.Gender,
		f.Age,
		f.Address,
		f.AppointmentCount,
	)
}
