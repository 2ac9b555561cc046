package seeders

var servicesData = []struct {
	Name        string
	Description string
	Price       string
}{
	{Name: "Kombi Bakımı", Description: "Yıllık periyodik kombi bakımı", Price: "1500.00"},
	{Name: "Klima Montajı", Description: "Split klima montajı, 3 metre boru dahil", Price: "2500.00"},
	{Name: "Klima Gaz Dolumu", Description: "R32/R410 gaz dolumu", Price: "1200.00"},
	{Name: "Arıza Tespiti", Description: "Yerinde arıza tespiti ve raporlama", Price: "750.00"},
	{Name: "Petek Temizliği", Description: "Makineli petek temizliği", Price: "1800.00"},
}

var warehousesData = []struct {
	Name     string
	Location string
}{
	{Name: "Merkez Depo", Location: "İstanbul, Ümraniye"},
	{Name: "Anadolu Yakası Depo", Location: "İstanbul, Kartal"},
	{Name: "Servis Aracı Deposu", Location: "Mobil"},
}

var productsData = []struct {
	Name          string
	SKU           string
	Category      string
	Unit          string
	UnitPrice     string
	MinStockLevel string
}{
	{Name: "Kombi Filtresi", SKU: "KOMBI_FILTRESI", Category: "Yedek Parça", Unit: "adet", UnitPrice: "85.00", MinStockLevel: "20"},
	{Name: "Genleşme Tankı 8L", SKU: "GENLESME_TANKI_8L", Category: "Yedek Parça", Unit: "adet", UnitPrice: "650.00", MinStockLevel: "5"},
	{Name: "R32 Soğutucu Gaz", SKU: "R32_SOGUTUCU_GAZ", Category: "Sarf", Unit: "kg", UnitPrice: "420.00", MinStockLevel: "10"},
	{Name: "Bakır Boru 1/4", SKU: "BAKIR_BORU_1_4", Category: "Sarf", Unit: "metre", UnitPrice: "95.00", MinStockLevel: "50"},
	{Name: "Conta Seti", SKU: "CONTA_SETI", Category: "Sarf", Unit: "adet", UnitPrice: "40.00", MinStockLevel: "30"},
}

var toolsData = []struct {
	Name         string
	SerialNumber string
	Category     string
}{
	{Name: "Vakum Pompası", SerialNumber: "VP-2023-001", Category: "Klima"},
	{Name: "Manifold Seti", SerialNumber: "MS-2023-014", Category: "Klima"},
	{Name: "Baca Gazı Analizörü", SerialNumber: "BGA-2022-007", Category: "Kombi"},
	{Name: "Akülü Matkap", SerialNumber: "AM-2024-031", Category: "Genel"},
}

var employeesData = []struct {
	FirstName  string
	LastName   string
	Phone      string
	Position   string
	Department string
	Skills     []string
}{
	{FirstName: "Ahmet", LastName: "Yılmaz", Phone: "05321234567", Position: "Kıdemli Teknisyen", Department: "Saha", Skills: []string{"kombi", "klima"}},
	{FirstName: "Mehmet", LastName: "Demir", Phone: "05331234567", Position: "Teknisyen", Department: "Saha", Skills: []string{"klima"}},
	{FirstName: "Ayşe", LastName: "Kaya", Phone: "05441234567", Position: "Depo Sorumlusu", Department: "Depo", Skills: []string{"stok"}},
}

var customersData = []struct {
	Name          string
	ContactPerson string
	Phone         string
	Address       string
	City          string
	District      string
}{
	{Name: "Yıldız Apartmanı Yönetimi", ContactPerson: "Hasan Öztürk", Phone: "02163334455", Address: "Atatürk Cad. No:12", City: "İstanbul", District: "Kadıköy"},
	{Name: "Deniz Kafe", ContactPerson: "Elif Şahin", Phone: "05356667788", Address: "Sahil Yolu No:4", City: "İstanbul", District: "Maltepe"},
	{Name: "Güneş Eczanesi", ContactPerson: "Murat Arslan", Phone: "02124445566", Address: "İstiklal Cad. No:210", City: "İstanbul", District: "Beyoğlu"},
}

var vehiclesData = []struct {
	Plate     string
	Brand     string
	Model     string
	Year      int
	CurrentKm int
}{
	{Plate: "34 ABC 123", Brand: "Fiat", Model: "Doblo", Year: 2021, CurrentKm: 84500},
	{Plate: "34 SRV 42", Brand: "Renault", Model: "Kangoo", Year: 2022, CurrentKm: 41200},
}
