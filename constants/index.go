package constants

const (
	ROLE_ADMIN = "admin"
	ROLE_USER  = "user"
)

const (
	CATEGORY_PUBLISHED = "published"
	CATEGORY_ARCHIVED  = "archived"
)

// Page size of the product category listing.
const CATEGORY_PAGE_SIZE = 10

const SESSION_COOKIE = "sid"

// User facing messages. The storefront expects these strings verbatim.
const (
	MSG_ADDRESS_CREATED  = "Berhasil"
	MSG_CATEGORY_CREATED = "Kategori produk baru berhasil dibuat!"
	MSG_LOGIN_SUCCESS    = "login success"
	MSG_LOGOUT_SUCCESS   = "logout success"
)

const (
	MISSING_LOGIN_INPUT        = "Email dan password wajib diisi"
	INVALID_CREDENTIALS        = "Email atau password salah"
	ACCOUNT_NOT_ACTIVE         = "Akun tidak aktif"
	NOT_FOUND_RECORDS          = "Data tidak ditemukan"
	FORBIDDEN_RESOURCE         = "Anda tidak memiliki akses ke data ini"
	UNAUTHORIZED               = "Silakan login terlebih dahulu"
	ADMIN_ONLY                 = "Hanya admin yang dapat mengakses"
	DATA_INPUT_IS_NOT_NUMBER   = "ID harus berupa angka"
	ERROR_INPUT                = "Data tidak valid"
	ERROR_INTERNAL_ERROR       = "Terjadi kesalahan pada server"
	ERROR_UPSTREAM             = "Layanan wilayah sedang tidak tersedia"
	ERROR_UPSTREAM_TIMEOUT     = "Layanan wilayah tidak merespons"
	ERROR_PARSE_DATA_TO_LOCALS = "Gagal membaca data request"
	CAN_NOT_HASH_PASSWORD      = "Gagal memproses password"
	EMAIL_ALREADY_USED         = "Email sudah terdaftar"
)
