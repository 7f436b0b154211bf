package catalog

// seedProducts is the fallback catalog used when the blob store holds no
// usable product list. IDs run 1..11 so a freshly seeded store hands out 12
// next.
var seedProducts = []Product{
	{ID: 1, Name: "Laptop Dell Inspiron 15", Category: "Điện tử", Price: 15990000, Quantity: 5, Description: "Laptop văn phòng màn hình 15.6 inch, RAM 16GB, SSD 512GB."},
	{ID: 2, Name: "Tai Nghe Bluetooth Sony", Category: "Điện tử", Price: 1290000, Quantity: 20, Description: "Tai nghe không dây chống ồn, pin 35 giờ."},
	{ID: 3, Name: "Chuột Không Dây Logitech", Category: "Điện tử", Price: 450000, Quantity: 35, Description: "Chuột quang không dây, kết nối USB receiver."},
	{ID: 4, Name: "Áo Thun Nam Cotton", Category: "Thời trang", Price: 120000, Quantity: 50, Description: "Áo thun cổ tròn chất liệu cotton thoáng mát."},
	{ID: 5, Name: "Quần Jean Nữ Ống Rộng", Category: "Thời trang", Price: 350000, Quantity: 30, Description: "Quần jean nữ lưng cao, form ống rộng."},
	{ID: 6, Name: "Giày Thể Thao Nike Air", Category: "Thời trang", Price: 2150000, Quantity: 12, Description: "Giày chạy bộ đế êm, trọng lượng nhẹ."},
	{ID: 7, Name: "Nồi Cơm Điện Toshiba", Category: "Gia dụng", Price: 890000, Quantity: 8, Description: "Nồi cơm điện 1.8 lít, lòng nồi chống dính."},
	{ID: 8, Name: "Bình Đun Siêu Tốc", Category: "Gia dụng", Price: 240000, Quantity: 15, Description: "Bình đun nước 1.7 lít, tự ngắt khi sôi."},
	{ID: 9, Name: "Sách Dạy Nấu Ăn", Category: "Sách", Price: 85000, Quantity: 40, Description: "Tuyển tập 100 món ăn gia đình dễ làm."},
	{ID: 10, Name: "Sách Kinh Tế Học", Category: "Sách", Price: 150000, Quantity: 25, Description: "Nhập môn kinh tế học cho người mới bắt đầu."},
	{ID: 11, Name: "Bộ Lego City Cảnh Sát", Category: "Đồ chơi", Price: 1590000, Quantity: 10, Description: "Bộ lắp ráp 450 chi tiết cho trẻ từ 6 tuổi."},
}

// Seed returns a fresh copy of the fallback catalog.
func Seed() []Product {
	out := make([]Product, len(seedProducts))
	copy(out, seedProducts)
	return out
}
