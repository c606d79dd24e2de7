package domain

import (
	"errors"
	"sort"
	"strings"
)

// ViewKind define como o conjunto de apartamentos é escolhido
type ViewKind string

const (
	ViewTotal   ViewKind = "total"
	ViewSingle  ViewKind = "single"
	ViewCompare ViewKind = "compare"
)

var (
	ErrUnknownViewKind      = errors.New("tipo de visão desconhecido")
	ErrMissingApartmentID   = errors.New("visão single exige um apartamento")
	ErrApartmentNotInLedger = errors.New("apartamento não encontrado")
)

// View é a variante Total | Single(apartamento) | Compare
type View struct {
	Kind        ViewKind `json:"kind"`
	ApartmentID string   `json:"apartment_id,omitempty"`
}

// TotalView retorna a visão com todos os apartamentos somados
func TotalView() View { return View{Kind: ViewTotal} }

// SingleView retorna a visão de um único apartamento
func SingleView(apartmentID string) View {
	return View{Kind: ViewSingle, ApartmentID: apartmentID}
}

// CompareView retorna a visão com uma série por apartamento
func CompareView() View { return View{Kind: ViewCompare} }

// ParseView converte os parâmetros de consulta numa View.
// Um valor vazio equivale a total; um id de apartamento sozinho equivale a single.
func ParseView(kind, apartmentID string) (View, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))
	apartmentID = strings.TrimSpace(apartmentID)

	switch ViewKind(kind) {
	case "":
		if apartmentID != "" {
			return SingleView(apartmentID), nil
		}
		return TotalView(), nil
	case ViewTotal:
		return TotalView(), nil
	case ViewCompare:
		return CompareView(), nil
	case ViewSingle:
		if apartmentID == "" {
			return View{}, ErrMissingApartmentID
		}
		return SingleView(apartmentID), nil
	default:
		return View{}, ErrUnknownViewKind
	}
}

// ApartmentSet é o conjunto explícito de apartamentos entregue aos motores de métricas
type ApartmentSet struct {
	Label string   `json:"label"`
	IDs   []string `json:"apartments"`
	index map[string]struct{}
}

// NewApartmentSet cria um conjunto ordenado e sem repetições
func NewApartmentSet(label string, ids ...string) ApartmentSet {
	index := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, exists := index[id]; exists || id == "" {
			continue
		}
		index[id] = struct{}{}
		unique = append(unique, id)
	}
	sort.Strings(unique)

	return ApartmentSet{Label: label, IDs: unique, index: index}
}

// Contains indica se o apartamento pertence ao conjunto
func (s ApartmentSet) Contains(apartmentID string) bool {
	_, ok := s.index[apartmentID]
	return ok
}

// Size retorna a quantidade de apartamentos do conjunto
func (s ApartmentSet) Size() int {
	return len(s.IDs)
}

// ResolveView transforma a visão em conjuntos explícitos de apartamentos.
// Total gera um conjunto com todos, Single um conjunto com um, Compare um conjunto por apartamento.
func ResolveView(view View, apartments []string) ([]ApartmentSet, error) {
	switch view.Kind {
	case ViewTotal, "":
		return []ApartmentSet{NewApartmentSet(string(ViewTotal), apartments...)}, nil
	case ViewSingle:
		for _, id := range apartments {
			if id == view.ApartmentID {
				return []ApartmentSet{NewApartmentSet(id, id)}, nil
			}
		}
		return nil, ErrApartmentNotInLedger
	case ViewCompare:
		all := NewApartmentSet(string(ViewCompare), apartments...)
		sets := make([]ApartmentSet, 0, all.Size())
		for _, id := range all.IDs {
			sets = append(sets, NewApartmentSet(id, id))
		}
		return sets, nil
	default:
		return nil, ErrUnknownViewKind
	}
}

// Series associa o resultado de uma métrica ao conjunto que o produziu
type Series[T any] struct {
	Label      string   `json:"label"`
	Apartments []string `json:"apartments"`
	Data       T        `json:"data"`
}
