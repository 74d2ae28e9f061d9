package models

type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	CPF      string `json:"cpf"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

// CustomerUpdate is a partial update; nil pointers keep the stored value.
type CustomerUpdate struct {
	Name     *string `json:"name"`
	CPF      *string `json:"cpf"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
}

func (u CustomerUpdate) Apply(c *Customer) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.CPF != nil {
		c.CPF = *u.CPF
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.Telefone != nil {
		c.Telefone = *u.Telefone
	}
}
