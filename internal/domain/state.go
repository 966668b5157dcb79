package domain

// State is the whole persisted object graph: the four entity collections
// plus the two selection fields. It serializes to the same JSON layout the
// original web client kept under its single localStorage slot.
type State struct {
	Bookings            []Booking      `json:"bookings"`
	SelectedRoom        string         `json:"selectedRoom"`
	SelectedRooms       []string       `json:"selectedRooms"`
	CustomTrainingTypes []TrainingType `json:"customTrainingTypes"`
	Rooms               []Room         `json:"rooms"`
	Leaves              []Leave        `json:"leaves"`
}

// Clone returns a deep copy of the state. All entity structs are value
// types, so copying the slices is enough.
func (s *State) Clone() State {
	out := State{
		SelectedRoom:        s.SelectedRoom,
		Bookings:            make([]Booking, len(s.Bookings)),
		SelectedRooms:       make([]string, len(s.SelectedRooms)),
		CustomTrainingTypes: make([]TrainingType, len(s.CustomTrainingTypes)),
		Rooms:               make([]Room, len(s.Rooms)),
		Leaves:              make([]Leave, len(s.Leaves)),
	}
	copy(out.Bookings, s.Bookings)
	copy(out.SelectedRooms, s.SelectedRooms)
	copy(out.CustomTrainingTypes, s.CustomTrainingTypes)
	copy(out.Rooms, s.Rooms)
	copy(out.Leaves, s.Leaves)
	return out
}

// RoomByID returns the room with the given id, or nil
func (s *State) RoomByID(id string) *Room {
	for i := range s.Rooms {
		if s.Rooms[i].ID == id {
			return &s.Rooms[i]
		}
	}
	return nil
}

// DefaultState returns the seed state used on first run, when no
// persisted snapshot exists yet
func DefaultState() State {
	return State{
		Bookings:            []Booking{},
		SelectedRoom:        FallbackRoomID,
		SelectedRooms:       []string{},
		CustomTrainingTypes: DefaultTrainingTypes(),
		Rooms:               DefaultRooms(),
		Leaves:              []Leave{},
	}
}

// DefaultTrainingTypes returns the seven default training categories
func DefaultTrainingTypes() []TrainingType {
	return []TrainingType{
		{ID: "1", Name: "IDENTIFIER SES POTENTIELS"},
		{ID: "2", Name: "PREPARATION A L'EMPLOI"},
		{ID: "3", Name: "CONNAISSANCES DU MONDE DE L'ENTREPRISE"},
		{ID: "4", Name: "NUMERIQUE"},
		{ID: "5", Name: "SAVOIRS DE BASE"},
		{ID: "6", Name: "FAVORISER L'AGENTIVITE"},
		{ID: "7", Name: "AUTRE"},
	}
}

// DefaultRooms returns the default set of rooms: two training rooms and
// seven named offices
func DefaultRooms() []Room {
	return []Room{
		{ID: "salle1", Name: "Salle 1", Type: RoomTypeTraining},
		{ID: "salle2", Name: "Salle 2", Type: RoomTypeTraining},
		{ID: "kathy", Name: "Bureau Kathy", Type: RoomTypeOffice},
		{ID: "yvan", Name: "Bureau Yvan", Type: RoomTypeOffice},
		{ID: "siham", Name: "Bureau Siham", Type: RoomTypeOffice},
		{ID: "kim", Name: "Bureau Kim", Type: RoomTypeOffice},
		{ID: "valerie", Name: "Bureau Valérie", Type: RoomTypeOffice},
		{ID: "samira", Name: "Bureau Samira", Type: RoomTypeOffice},
		{ID: "laure", Name: "Bureau Laure", Type: RoomTypeOffice},
	}
}
