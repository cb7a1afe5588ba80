// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria. Es el colaborador de almacenamiento por defecto (STORAGE_DRIVER=
// memory): un store explícito con ciclo de vida atado al proceso, pasado por
// referencia a cada motor; nunca un singleton a nivel de módulo.
package memory

import (
	"sync"

	"github.com/jhoicas/cafeteria-api/internal/domain/entity"
)

// Store contenedor de todas las colecciones. Los repositorios devuelven
// copias profundas: el caller muta su copia y persiste con Update, igual que
// contra una base de datos real.
type Store struct {
	mu sync.RWMutex

	items      map[string]*entity.InventoryItem
	itemOrder  []string
	ledger     []*entity.InventoryTransaction // append-only, en orden de registro
	ledgerByID map[string]*entity.InventoryTransaction

	recipes     map[string]*entity.Recipe
	recipeOrder []string

	menuItems map[string]*entity.MenuItem
	menuOrder []string

	// writerMu serializa las unidades atómicas del libro (TxRunner): la
	// disciplina de escritor único del motor.
	writerMu sync.Mutex
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		items:      make(map[string]*entity.InventoryItem),
		ledgerByID: make(map[string]*entity.InventoryTransaction),
		recipes:    make(map[string]*entity.Recipe),
		menuItems:  make(map[string]*entity.MenuItem),
	}
}

func paginate(total, limit, offset int) (start, end int) {
	if offset >= total {
		return total, total
	}
	start = offset
	end = offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return start, end
}
