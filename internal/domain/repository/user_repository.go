package repository

import "github.com/jhoicas/pos-ferreteria-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// Count devuelve el número total de usuarios; decide si el registro
	// público está abierto (cero usuarios) o cerrado.
	Count() (int, error)
}
