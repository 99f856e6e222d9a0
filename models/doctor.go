package models

type Department string

type Doctor struct {
	Name       string     `json:"name"`
	Department Department `json:"department"`
}
