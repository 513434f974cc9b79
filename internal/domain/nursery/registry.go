package nursery

import (
	"sort"
	"strings"

	"nursery/internal/domain/plant"
)

type StaffRole string

const (
	RoleGardener StaffRole = "gardener"
	RoleCashier  StaffRole = "cashier"
	RoleManager  StaffRole = "manager"
)

func (r StaffRole) Valid() bool {
	switch r {
	case RoleGardener, RoleCashier, RoleManager:
		return true
	default:
		return false
	}
}

type Staff struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Role StaffRole `json:"role"`
}

// Customer owns every unit it has bought.
type Customer struct {
	ID        string
	Name      string
	purchases []*plant.Unit
	spent     float64
}

type CustomerView struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Purchases []plant.View `json:"purchases"`
	Spent     float64      `json:"spent"`
}

func (c *Customer) Purchases() []*plant.Unit {
	return append([]*plant.Unit(nil), c.purchases...)
}

func (c *Customer) Spent() float64 {
	return c.spent
}

func (c *Customer) View() CustomerView {
	out := CustomerView{ID: c.ID, Name: c.Name, Spent: c.spent, Purchases: make([]plant.View, 0, len(c.purchases))}
	for _, u := range c.purchases {
		out.Purchases = append(out.Purchases, u.View())
	}
	return out
}

func (c *Customer) take(u *plant.Unit, price float64) {
	c.purchases = append(c.purchases, u)
	c.spent += price
}

// Registry holds the people the facility deals with, split by kind.
type Registry struct {
	staff     map[string]Staff
	customers map[string]*Customer
}

func NewRegistry() *Registry {
	return &Registry{
		staff:     map[string]Staff{},
		customers: map[string]*Customer{},
	}
}

func (r *Registry) RegisterStaff(s Staff) error {
	s.ID = strings.TrimSpace(s.ID)
	if s.ID == "" || !s.Role.Valid() {
		return ErrInvalidParticipant
	}
	if _, exists := r.staff[s.ID]; exists {
		return ErrAlreadyRegistered
	}
	r.staff[s.ID] = s
	return nil
}

func (r *Registry) RegisterCustomer(id, name string) (*Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidParticipant
	}
	if _, exists := r.customers[id]; exists {
		return nil, ErrAlreadyRegistered
	}
	c := &Customer{ID: id, Name: strings.TrimSpace(name)}
	r.customers[id] = c
	return c, nil
}

func (r *Registry) Staff(id string) (Staff, bool) {
	s, ok := r.staff[id]
	return s, ok
}

func (r *Registry) Customer(id string) (*Customer, bool) {
	c, ok := r.customers[id]
	return c, ok
}

func (r *Registry) StaffByRole(role StaffRole) []Staff {
	out := make([]Staff, 0)
	for _, s := range r.staff {
		if s.Role == role {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
