package entity

// ViewID identificador cerrado de cada vista (pestaña) del dashboard.
// Solo las constantes de abajo son válidas; ParseViewID rechaza el resto.
type ViewID string

const (
	ViewOverview   ViewID = "Ringkasan"
	ViewAttendance ViewID = "Absensi"

	// SUPERADMIN
	ViewInventory ViewID = "Inventaris"
	ViewOrders    ViewID = "Pesanan"
	ViewTeam      ViewID = "Tim"
	ViewReports   ViewID = "Laporan"
	ViewSettings  ViewID = "Pengaturan"

	// ADMIN_PACKING
	ViewPackingQueue   ViewID = "Antrean"
	ViewPackagingStock ViewID = "Stok"

	// ADMIN_KONTEN
	ViewContentAssets ViewID = "Galeri"
	ViewSocialMedia   ViewID = "Sosmed"

	// ADMIN_MARKETPLACE
	ViewStore        ViewID = "Toko"
	ViewCustomerChat ViewID = "Chat"
)

var viewLabels = map[ViewID]string{
	ViewOverview:       "Ringkasan",
	ViewAttendance:     "Absensi",
	ViewInventory:      "Inventaris Stok",
	ViewOrders:         "Daftar Pesanan",
	ViewTeam:           "Tim Internal",
	ViewReports:        "Laporan Keuangan",
	ViewSettings:       "Pengaturan",
	ViewPackingQueue:   "Antrean Packing",
	ViewPackagingStock: "Stok Kemasan",
	ViewContentAssets:  "Aset Konten",
	ViewSocialMedia:    "Social Media",
	ViewStore:          "Manajemen Toko",
	ViewCustomerChat:   "Chat Pelanggan",
}

// DefaultView vista compartida a la que se redirige cualquier selección inválida.
const DefaultView = ViewOverview

// ParseViewID valida que s sea una de las vistas conocidas.
func ParseViewID(s string) (ViewID, bool) {
	v := ViewID(s)
	_, ok := viewLabels[v]
	return v, ok
}

// Label etiqueta del menú lateral.
func (v ViewID) Label() string {
	if l, ok := viewLabels[v]; ok {
		return l
	}
	return string(v)
}
