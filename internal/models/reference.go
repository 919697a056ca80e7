package models

type Professor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Course struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Weekday es una opción del selector de día de la semana
type Weekday struct {
	ID   string
	Name string
}

// Weekdays lista los códigos que ofrece el editor. No se valida contra esta lista.
var Weekdays = []Weekday{
	{ID: "MONDAY", Name: "Lunes"},
	{ID: "TUESDAY", Name: "Martes"},
	{ID: "WEDNESDAY", Name: "Miércoles"},
	{ID: "THURSDAY", Name: "Jueves"},
	{ID: "FRIDAY", Name: "Viernes"},
	{ID: "SATURDAY", Name: "Sábado"},
	{ID: "SUNDAY", Name: "Domingo"},
}
