package seed

import "github.com/tu-usuario/facturas-dashboard/internal/domain/entity"

// fixtureUser usuario de fixture con la contraseña aún en claro; se hashea
// con bcrypt justo antes de insertar.
type fixtureUser struct {
	ID       string
	Name     string
	Email    string
	Password string
}

// fixtureInvoice factura de fixture; el índice de cliente referencia a customers.
type fixtureInvoice struct {
	CustomerIndex int
	Amount        int64 // centavos
	Date          string
	Status        string
}

var users = []fixtureUser{
	{
		ID:       "410544b2-4001-4271-9855-fec4b6a6442a",
		Name:     "User",
		Email:    "user@nextmail.com",
		Password: "123456",
	},
}

var customers = []entity.Customer{
	{
		ID:       "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa",
		Name:     "Evil Rabbit",
		Email:    "evil@rabbit.com",
		ImageURL: "/customers/evil-rabbit.png",
	},
	{
		ID:       "3958dc9e-712f-4377-85e9-fec4b6a6442a",
		Name:     "Delba de Oliveira",
		Email:    "delba@oliveira.com",
		ImageURL: "/customers/delba-de-oliveira.png",
	},
	{
		ID:       "3958dc9e-742f-4377-85e9-fec4b6a6442a",
		Name:     "Lee Robinson",
		Email:    "lee@robinson.com",
		ImageURL: "/customers/lee-robinson.png",
	},
	{
		ID:       "76d65c26-f784-44a2-ac19-586678f7c2f2",
		Name:     "Michael Novotny",
		Email:    "michael@novotny.com",
		ImageURL: "/customers/michael-novotny.png",
	},
	{
		ID:       "cc27c14a-0acf-4f4a-a6c9-d45682c144b9",
		Name:     "Amy Burns",
		Email:    "amy@burns.com",
		ImageURL: "/customers/amy-burns.png",
	},
	{
		ID:       "13d07535-c59e-4157-a011-f8d2ef4e0cbb",
		Name:     "Balazs Orban",
		Email:    "balazs@orban.com",
		ImageURL: "/customers/balazs-orban.png",
	},
}

var invoices = []fixtureInvoice{
	{CustomerIndex: 0, Amount: 15795, Date: "2022-12-06", Status: entity.StatusPending},
	{CustomerIndex: 1, Amount: 20348, Date: "2022-11-14", Status: entity.StatusPending},
	{CustomerIndex: 4, Amount: 3040, Date: "2022-10-29", Status: entity.StatusPaid},
	{CustomerIndex: 3, Amount: 44800, Date: "2023-09-10", Status: entity.StatusPaid},
	{CustomerIndex: 5, Amount: 34577, Date: "2023-08-05", Status: entity.StatusPending},
	{CustomerIndex: 2, Amount: 54246, Date: "2023-07-16", Status: entity.StatusPending},
	{CustomerIndex: 0, Amount: 666, Date: "2023-06-27", Status: entity.StatusPending},
	{CustomerIndex: 3, Amount: 32545, Date: "2023-06-09", Status: entity.StatusPaid},
	{CustomerIndex: 4, Amount: 1250, Date: "2023-06-17", Status: entity.StatusPaid},
	{CustomerIndex: 5, Amount: 8546, Date: "2023-06-07", Status: entity.StatusPaid},
	{CustomerIndex: 1, Amount: 500, Date: "2023-08-19", Status: entity.StatusPaid},
	{CustomerIndex: 5, Amount: 8945, Date: "2023-06-03", Status: entity.StatusPaid},
	{CustomerIndex: 2, Amount: 1000, Date: "2022-06-05", Status: entity.StatusPaid},
}

var revenue = []entity.Revenue{
	{Month: "Jan", Revenue: 2000},
	{Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200},
	{Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300},
	{Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500},
	{Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500},
	{Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000},
	{Month: "Dec", Revenue: 4800},
}
