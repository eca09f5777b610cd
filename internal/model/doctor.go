package model

// DoctorForm holds the raw Add Doctor input. Numeric fields stay strings
// and are bound as typed; the database does the conversion.
type DoctorForm struct {
	ID           string
	Name         string
	Specialty    string
	DepartmentID string
}

const insertDoctorSQL = `insert into Doctor (doctor_ID, name, specialty, did) values ($1, $2, $3, $4)`

func (f DoctorForm) Insert() Statement {
	return NewStatement(insertDoctorSQL, f.ID, f.Name, f.Specialty, f.DepartmentID)
}
