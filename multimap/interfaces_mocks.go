// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package multimap

import (
	reflect "reflect"

	common "github.com/Fantom-foundation/Collections/common"
	gomock "go.uber.org/mock/gomock"
)

// MockValueCollection is a mock of ValueCollection interface.
type MockValueCollection[V comparable] struct {
	ctrl     *gomock.Controller
	recorder *MockValueCollectionMockRecorder[V]
}

// MockValueCollectionMockRecorder is the mock recorder for MockValueCollection.
type MockValueCollectionMockRecorder[V comparable] struct {
	mock *MockValueCollection[V]
}

// NewMockValueCollection creates a new mock instance.
func NewMockValueCollection[V comparable](ctrl *gomock.Controller) *MockValueCollection[V] {
	mock := &MockValueCollection[V]{ctrl: ctrl}
	mock.recorder = &MockValueCollectionMockRecorder[V]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockValueCollection[V]) EXPECT() *MockValueCollectionMockRecorder[V] {
	return m.recorder
}

// Add mocks base method.
func (m *MockValueCollection[V]) Add(value V) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Add", value)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Add indicates an expected call of Add.
func (mr *MockValueCollectionMockRecorder[V]) Add(value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Add", reflect.TypeOf((*MockValueCollection[V])(nil).Add), value)
}

// Contains mocks base method.
func (m *MockValueCollection[V]) Contains(value V) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Contains", value)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Contains indicates an expected call of Contains.
func (mr *MockValueCollectionMockRecorder[V]) Contains(value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Contains", reflect.TypeOf((*MockValueCollection[V])(nil).Contains), value)
}

// ForEach mocks base method.
func (m *MockValueCollection[V]) ForEach(callback func(V)) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ForEach", callback)
}

// ForEach indicates an expected call of ForEach.
func (mr *MockValueCollectionMockRecorder[V]) ForEach(callback any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ForEach", reflect.TypeOf((*MockValueCollection[V])(nil).ForEach), callback)
}

// GetMemoryFootprint mocks base method.
func (m *MockValueCollection[V]) GetMemoryFootprint() *common.MemoryFootprint {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMemoryFootprint")
	ret0, _ := ret[0].(*common.MemoryFootprint)
	return ret0
}

// GetMemoryFootprint indicates an expected call of GetMemoryFootprint.
func (mr *MockValueCollectionMockRecorder[V]) GetMemoryFootprint() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMemoryFootprint", reflect.TypeOf((*MockValueCollection[V])(nil).GetMemoryFootprint))
}

// Remove mocks base method.
func (m *MockValueCollection[V]) Remove(value V) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Remove", value)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Remove indicates an expected call of Remove.
func (mr *MockValueCollectionMockRecorder[V]) Remove(value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Remove", reflect.TypeOf((*MockValueCollection[V])(nil).Remove), value)
}

// Retain mocks base method.
func (m *MockValueCollection[V]) Retain(predicate func(V) bool) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Retain", predicate)
	ret0, _ := ret[0].(int)
	return ret0
}

// Retain indicates an expected call of Retain.
func (mr *MockValueCollectionMockRecorder[V]) Retain(predicate any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Retain", reflect.TypeOf((*MockValueCollection[V])(nil).Retain), predicate)
}

// Size mocks base method.
func (m *MockValueCollection[V]) Size() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Size")
	ret0, _ := ret[0].(int)
	return ret0
}

// Size indicates an expected call of Size.
func (mr *MockValueCollectionMockRecorder[V]) Size() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Size", reflect.TypeOf((*MockValueCollection[V])(nil).Size))
}

// Values mocks base method.
func (m *MockValueCollection[V]) Values() []V {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Values")
	ret0, _ := ret[0].([]V)
	return ret0
}

// Values indicates an expected call of Values.
func (mr *MockValueCollectionMockRecorder[V]) Values() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Values", reflect.TypeOf((*MockValueCollection[V])(nil).Values))
}

// MockOrderedValueCollection is a mock of OrderedValueCollection interface.
type MockOrderedValueCollection[V comparable] struct {
	ctrl     *gomock.Controller
	recorder *MockOrderedValueCollectionMockRecorder[V]
}

// MockOrderedValueCollectionMockRecorder is the mock recorder for MockOrderedValueCollection.
type MockOrderedValueCollectionMockRecorder[V comparable] struct {
	mock *MockOrderedValueCollection[V]
}

// NewMockOrderedValueCollection creates a new mock instance.
func NewMockOrderedValueCollection[V comparable](ctrl *gomock.Controller) *MockOrderedValueCollection[V] {
	mock := &MockOrderedValueCollection[V]{ctrl: ctrl}
	mock.recorder = &MockOrderedValueCollectionMockRecorder[V]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockOrderedValueCollection[V]) EXPECT() *MockOrderedValueCollectionMockRecorder[V] {
	return m.recorder
}

// Add mocks base method.
func (m *MockOrderedValueCollection[V]) Add(value V) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Add", value)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Add indicates an expected call of Add.
func (mr *MockOrderedValueCollectionMockRecorder[V]) Add(value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Add", reflect.TypeOf((*MockOrderedValueCollection[V])(nil).Add), value)
}

// AddFull mocks base method.
func (m *MockOrderedValueCollection[V]) AddFull(value V) (int, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddFull", value)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// AddFull indicates an expected call of AddFull.
func (mr *MockOrderedValueCollectionMockRecorder[V]) AddFull(value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddFull", reflect.TypeOf((*MockOrderedValueCollection[V])(nil).AddFull), value)
}

// Contains mocks base method.
func (m *MockOrderedValueCollection[V]) Contains(value V) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Contains", value)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Contains indicates an expected call of Contains.
func (mr *MockOrderedValueCollectionMockRecorder[V]) Contains(value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Contains", reflect.TypeOf((*MockOrderedValueCollection[V])(nil).Contains), value)
}

// ForEach mocks base method.
func (m *MockOrderedValueCollection[V]) ForEach(callback func(V)) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ForEach", callback)
}

// ForEach indicates an expected call of ForEach.
func (mr *MockOrderedValueCollectionMockRecorder[V]) ForEach(callback any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ForEach", reflect.TypeOf((*MockOrderedValueCollection[V])(nil).ForEach), callback)
}

// GetMemoryFootprint mocks base method.
func (m *MockOrderedValueCollection[V]) GetMemoryFootprint() *common.MemoryFootprint {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMemoryFootprint")
	ret0, _ := ret[0].(*common.MemoryFootprint)
	return ret0
}

// GetMemoryFootprint indicates an expected call of GetMemoryFootprint.
func (mr *MockOrderedValueCollectionMockRecorder[V]) GetMemoryFootprint() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMemoryFootprint", reflect.TypeOf((*MockOrderedValueCollection[V])(nil).GetMemoryFootprint))
}

// Remove mocks base method.
func (m *MockOrderedValueCollection[V]) Remove(value V) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Remove", value)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Remove indicates an expected call of Remove.
func (mr *MockOrderedValueCollectionMockRecorder[V]) Remove(value any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Remove", reflect.TypeOf((*MockOrderedValueCollection[V])(nil).Remove), value)
}

// Retain mocks base method.
func (m *MockOrderedValueCollection[V]) Retain(predicate func(V) bool) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Retain", predicate)
	ret0, _ := ret[0].(int)
	return ret0
}

// Retain indicates an expected call of Retain.
func (mr *MockOrderedValueCollectionMockRecorder[V]) Retain(predicate any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Retain", reflect.TypeOf((*MockOrderedValueCollection[V])(nil).Retain), predicate)
}

// Size mocks base method.
func (m *MockOrderedValueCollection[V]) Size() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Size")
	ret0, _ := ret[0].(int)
	return ret0
}

// Size indicates an expected call of Size.
func (mr *MockOrderedValueCollectionMockRecorder[V]) Size() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Size", reflect.TypeOf((*MockOrderedValueCollection[V])(nil).Size))
}

// Values mocks base method.
func (m *MockOrderedValueCollection[V]) Values() []V {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Values")
	ret0, _ := ret[0].([]V)
	return ret0
}

// Values indicates an expected call of Values.
func (mr *MockOrderedValueCollectionMockRecorder[V]) Values() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Values", reflect.TypeOf((*MockOrderedValueCollection[V])(nil).Values))
}

// MockKeyStore is a mock of KeyStore interface.
type MockKeyStore[K comparable, V comparable] struct {
	ctrl     *gomock.Controller
	recorder *MockKeyStoreMockRecorder[K, V]
}

// MockKeyStoreMockRecorder is the mock recorder for MockKeyStore.
type MockKeyStoreMockRecorder[K comparable, V comparable] struct {
	mock *MockKeyStore[K, V]
}

// NewMockKeyStore creates a new mock instance.
func NewMockKeyStore[K comparable, V comparable](ctrl *gomock.Controller) *MockKeyStore[K, V] {
	mock := &MockKeyStore[K, V]{ctrl: ctrl}
	mock.recorder = &MockKeyStoreMockRecorder[K, V]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockKeyStore[K, V]) EXPECT() *MockKeyStoreMockRecorder[K, V] {
	return m.recorder
}

// Clear mocks base method.
func (m *MockKeyStore[K, V]) Clear() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Clear")
}

// Clear indicates an expected call of Clear.
func (mr *MockKeyStoreMockRecorder[K, V]) Clear() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Clear", reflect.TypeOf((*MockKeyStore[K, V])(nil).Clear))
}

// ForEach mocks base method.
func (m *MockKeyStore[K, V]) ForEach(callback func(K, ValueCollection[V])) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ForEach", callback)
}

// ForEach indicates an expected call of ForEach.
func (mr *MockKeyStoreMockRecorder[K, V]) ForEach(callback any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ForEach", reflect.TypeOf((*MockKeyStore[K, V])(nil).ForEach), callback)
}

// Get mocks base method.
func (m *MockKeyStore[K, V]) Get(key K) (ValueCollection[V], bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", key)
	ret0, _ := ret[0].(ValueCollection[V])
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// Get indicates an expected call of Get.
func (mr *MockKeyStoreMockRecorder[K, V]) Get(key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockKeyStore[K, V])(nil).Get), key)
}

// GetMemoryFootprint mocks base method.
func (m *MockKeyStore[K, V]) GetMemoryFootprint() *common.MemoryFootprint {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetMemoryFootprint")
	ret0, _ := ret[0].(*common.MemoryFootprint)
	return ret0
}

// GetMemoryFootprint indicates an expected call of GetMemoryFootprint.
func (mr *MockKeyStoreMockRecorder[K, V]) GetMemoryFootprint() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMemoryFootprint", reflect.TypeOf((*MockKeyStore[K, V])(nil).GetMemoryFootprint))
}

// Iterator mocks base method.
func (m *MockKeyStore[K, V]) Iterator() common.Iterator[common.MapEntry[K, ValueCollection[V]]] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Iterator")
	ret0, _ := ret[0].(common.Iterator[common.MapEntry[K, ValueCollection[V]]])
	return ret0
}

// Iterator indicates an expected call of Iterator.
func (mr *MockKeyStoreMockRecorder[K, V]) Iterator() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Iterator", reflect.TypeOf((*MockKeyStore[K, V])(nil).Iterator))
}

// Put mocks base method.
func (m *MockKeyStore[K, V]) Put(key K, values ValueCollection[V]) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Put", key, values)
}

// Put indicates an expected call of Put.
func (mr *MockKeyStoreMockRecorder[K, V]) Put(key, values any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Put", reflect.TypeOf((*MockKeyStore[K, V])(nil).Put), key, values)
}

// Remove mocks base method.
func (m *MockKeyStore[K, V]) Remove(key K) (ValueCollection[V], bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Remove", key)
	ret0, _ := ret[0].(ValueCollection[V])
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// Remove indicates an expected call of Remove.
func (mr *MockKeyStoreMockRecorder[K, V]) Remove(key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Remove", reflect.TypeOf((*MockKeyStore[K, V])(nil).Remove), key)
}

// Size mocks base method.
func (m *MockKeyStore[K, V]) Size() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Size")
	ret0, _ := ret[0].(int)
	return ret0
}

// Size indicates an expected call of Size.
func (mr *MockKeyStoreMockRecorder[K, V]) Size() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Size", reflect.TypeOf((*MockKeyStore[K, V])(nil).Size))
}
