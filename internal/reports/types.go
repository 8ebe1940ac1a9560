package reports

// Row shapes returned by the aggregation queries. Column aliases in the SQL
// match the gorm column tags; json tags are the wire contract the dashboard
// client consumes. Numeric aggregates are COALESCEd in SQL so absence of
// matching rows surfaces as 0, never null. shippedDate is the one
// legitimately nullable field.

type Summary struct {
	TotalCustomers int64   `gorm:"column:total_customers" json:"totalCustomers"`
	TotalOrders    int64   `gorm:"column:total_orders" json:"totalOrders"`
	TotalRevenue   float64 `gorm:"column:total_revenue" json:"totalRevenue"`
	TotalProducts  int64   `gorm:"column:total_products" json:"totalProducts"`
}

type OrderRow struct {
	OrderNumber  int     `gorm:"column:order_number" json:"orderNumber"`
	OrderDate    string  `gorm:"column:order_date" json:"orderDate"`
	RequiredDate string  `gorm:"column:required_date" json:"requiredDate"`
	ShippedDate  *string `gorm:"column:shipped_date" json:"shippedDate"`
	Status       string  `gorm:"column:status" json:"status"`
	Comments     *string `gorm:"column:comments" json:"comments"`
	CustomerName string  `gorm:"column:customer_name" json:"customerName"`
	Total        float64 `gorm:"column:total" json:"total"`
}

type OrderAnalytics struct {
	TotalOrders        int64   `gorm:"column:total_orders" json:"totalOrders"`
	ShippedOrders      int64   `gorm:"column:shipped_orders" json:"shippedOrders"`
	PendingOrders      int64   `gorm:"column:pending_orders" json:"pendingOrders"`
	CancelledOrders    int64   `gorm:"column:cancelled_orders" json:"cancelledOrders"`
	AvgFulfillmentTime float64 `gorm:"column:avg_fulfillment_time" json:"avgFulfillmentTime"`
}

type CustomerRow struct {
	CustomerNumber int     `gorm:"column:customer_number" json:"customerNumber"`
	CustomerName   string  `gorm:"column:customer_name" json:"customerName"`
	City           string  `gorm:"column:city" json:"city"`
	Country        string  `gorm:"column:country" json:"country"`
	OrderCount     int64   `gorm:"column:order_count" json:"orderCount"`
	TotalPayment   float64 `gorm:"column:total_payment" json:"totalPayment"`
}

type TopCustomerRow struct {
	CustomerNumber int     `gorm:"column:customer_number" json:"customerNumber"`
	CustomerName   string  `gorm:"column:customer_name" json:"customerName"`
	Country        string  `gorm:"column:country" json:"country"`
	TotalSpent     float64 `gorm:"column:total_spent" json:"totalSpent"`
}

type ProductRow struct {
	ProductCode     string  `gorm:"column:product_code" json:"productCode"`
	ProductName     string  `gorm:"column:product_name" json:"productName"`
	ProductLine     string  `gorm:"column:product_line" json:"productLine"`
	QuantityInStock int     `gorm:"column:quantity_in_stock" json:"quantityInStock"`
	BuyPrice        float64 `gorm:"column:buy_price" json:"buyPrice"`
	MSRP            float64 `gorm:"column:msrp" json:"MSRP"`
	OrderCount      int64   `gorm:"column:order_count" json:"orderCount"`
}

type RevenuePoint struct {
	Date    string  `gorm:"column:date" json:"date"`
	Revenue float64 `gorm:"column:revenue" json:"revenue"`
}

type MonthlyRevenuePoint struct {
	Month   string  `gorm:"column:month" json:"month"`
	Revenue float64 `gorm:"column:revenue" json:"revenue"`
}

type InventoryLineRow struct {
	ProductLine   string  `gorm:"column:product_line" json:"productLine"`
	ProductCount  int64   `gorm:"column:product_count" json:"productCount"`
	TotalQuantity int64   `gorm:"column:total_quantity" json:"totalQuantity"`
	AvgQuantity   float64 `gorm:"column:avg_quantity" json:"avgQuantity"`
	TotalValue    float64 `gorm:"column:total_value" json:"totalValue"`
}

type ProductLineRow struct {
	ProductLine  string `gorm:"column:product_line" json:"productLine"`
	ProductCount int64  `gorm:"column:product_count" json:"productCount"`
	TotalStock   int64  `gorm:"column:total_stock" json:"totalStock"`
}

type EmployeeRow struct {
	EmployeeNumber   int    `gorm:"column:employee_number" json:"employeeNumber"`
	FirstName        string `gorm:"column:first_name" json:"firstName"`
	LastName         string `gorm:"column:last_name" json:"lastName"`
	JobTitle         string `gorm:"column:job_title" json:"jobTitle"`
	ReportsTo        *int   `gorm:"column:reports_to" json:"reportsTo"`
	OfficeCode       string `gorm:"column:office_code" json:"officeCode"`
	City             string `gorm:"column:city" json:"city"`
	Country          string `gorm:"column:country" json:"country"`
	CustomersManaged int64  `gorm:"column:customers_managed" json:"customersManaged"`
}

type EmployeePerformanceRow struct {
	Name           string  `gorm:"column:name" json:"name"`
	JobTitle       string  `gorm:"column:job_title" json:"jobTitle"`
	EmployeeNumber int     `gorm:"column:employee_number" json:"employeeNumber"`
	CustomersCount int64   `gorm:"column:customers_count" json:"customersCount"`
	OrdersCount    int64   `gorm:"column:orders_count" json:"ordersCount"`
	TotalRevenue   float64 `gorm:"column:total_revenue" json:"totalRevenue"`
}

type OfficeRow struct {
	OfficeCode    string `gorm:"column:office_code" json:"officeCode"`
	City          string `gorm:"column:city" json:"city"`
	Country       string `gorm:"column:country" json:"country"`
	PostalCode    string `gorm:"column:postal_code" json:"postalCode"`
	Phone         string `gorm:"column:phone" json:"phone"`
	EmployeeCount int64  `gorm:"column:employee_count" json:"employeeCount"`
	CustomerCount int64  `gorm:"column:customer_count" json:"customerCount"`
}

type RegionSalesRow struct {
	Country   string  `gorm:"column:country" json:"country"`
	Customers int64   `gorm:"column:customers" json:"customers"`
	Orders    int64   `gorm:"column:orders" json:"orders"`
	Revenue   float64 `gorm:"column:revenue" json:"revenue"`
}

type OfficePerformanceRow struct {
	City      string  `gorm:"column:city" json:"city"`
	Country   string  `gorm:"column:country" json:"country"`
	Customers int64   `gorm:"column:customers" json:"customers"`
	Revenue   float64 `gorm:"column:revenue" json:"revenue"`
}

type RegionPerformanceRow struct {
	Region    string  `gorm:"column:region" json:"region"`
	Customers int64   `gorm:"column:customers" json:"customers"`
	Orders    int64   `gorm:"column:orders" json:"orders"`
	Revenue   float64 `gorm:"column:revenue" json:"revenue"`
}

type ProductPerformanceRow struct {
	ProductName   string  `gorm:"column:product_name" json:"productName"`
	ProductLine   string  `gorm:"column:product_line" json:"productLine"`
	TimesSold     int64   `gorm:"column:times_sold" json:"timesSold"`
	TotalQuantity int64   `gorm:"column:total_quantity" json:"totalQuantity"`
	TotalRevenue  float64 `gorm:"column:total_revenue" json:"totalRevenue"`
}

type EmployeeLeaderRow struct {
	Name      string  `gorm:"column:name" json:"name"`
	JobTitle  string  `gorm:"column:job_title" json:"jobTitle"`
	Customers int64   `gorm:"column:customers" json:"customers"`
	Orders    int64   `gorm:"column:orders" json:"orders"`
	Revenue   float64 `gorm:"column:revenue" json:"revenue"`
}

// Overview bundles the advanced dashboard page into one response. The whole
// bundle fails if any sub-query fails; there are no partial results.
type Overview struct {
	TotalEmployees      int64                   `json:"totalEmployees"`
	TotalOffices        int64                   `json:"totalOffices"`
	AvgOrderValue       float64                 `json:"avgOrderValue"`
	TopOffices          []OfficePerformanceRow  `json:"topOffices"`
	RegionSales         []RegionPerformanceRow  `json:"regionSales"`
	ProductPerformance  []ProductPerformanceRow `json:"productPerformance"`
	EmployeePerformance []EmployeeLeaderRow     `json:"employeePerformance"`
}
